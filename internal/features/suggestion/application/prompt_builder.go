package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	settingsdomain "fashion-advisor/backend/internal/features/settings/domain"
	"fashion-advisor/backend/internal/features/suggestion/domain"
)

// systemInstruction is sent as the system message of every suggestion call.
const systemInstruction = `あなたは楽天ファッションの専門家です。以下の指示に従ってください：

1. 必ず楽天ファッション（https://brandavenue.rakuten.co.jp/all-sites/item/）で実際に検索して、現在購入可能な商品のみを提案してください。

2. 架空の商品や存在しないURLは絶対に使用しないでください。

3. 各商品について、以下の情報を含めてください：
   - 商品名（実際の楽天ファッションで販売されている商品）
   - 説明（商品の特徴やスタイリングポイント）
   - カテゴリ（トップス、ボトムス、アウター、ワンピース、シューズ、バッグなど）
   - 色
   - 楽天ファッションでの検索URL（実際に検索できるURL）

4. 検索URLは以下の形式で生成してください：
   https://brandavenue.rakuten.co.jp/all-sites/item/?searchWord={検索キーワード}&categoryId={カテゴリID}

5. ユーザーの好み（スタイル、色、シーン、季節、体型、身長）に最適な商品を5-6点提案してください。

6. 各提案は具体的で実用的なものにしてください。`

var (
	toneDescriptions = map[settingsdomain.Tone]string{
		settingsdomain.ToneFriendly:     "親しみやすく、温かみのある",
		settingsdomain.ToneProfessional: "専門的で信頼できる",
		settingsdomain.ToneCasual:       "カジュアルでリラックスした",
		settingsdomain.ToneElegant:      "上品で洗練された",
		settingsdomain.ToneEnthusiastic: "情熱的で前向きな",
	}
	registerDescriptions = map[settingsdomain.Register]string{
		settingsdomain.RegisterPolite: "丁寧語",
		settingsdomain.RegisterCasual: "カジュアル",
		settingsdomain.RegisterFormal: "フォーマル",
	}
	detailDescriptions = map[settingsdomain.DetailLevel]string{
		settingsdomain.DetailBrief:        "簡潔",
		settingsdomain.DetailDetailed:     "詳細",
		settingsdomain.DetailVeryDetailed: "非常に詳細",
	}
	focusDescriptions = map[settingsdomain.Focus]string{
		settingsdomain.FocusTrendy:    "トレンド重視",
		settingsdomain.FocusClassic:   "クラシック重視",
		settingsdomain.FocusPractical: "実用性重視",
		settingsdomain.FocusCreative:  "創造性重視",
		settingsdomain.FocusBalanced:  "バランス重視",
	}
)

// describe looks key up in table and falls back to the raw value.
func describe[K ~string](table map[K]string, key K) string {
	if d, ok := table[key]; ok {
		return d
	}
	return string(key)
}

func inclusion(b bool) string {
	if b {
		return "含める"
	}
	return "含めない"
}

// BuildPrompt renders settings and preferences into the user message sent to
// the model. It has no side effects.
func BuildPrompt(settings settingsdomain.PromptSettings, prefs domain.Preferences) string {
	p, advice, out := settings.Personality, settings.FashionAdvice, settings.OutputFormat
	var b strings.Builder

	fmt.Fprintf(&b, "あなたは%s専門的なファッションアドバイザーです。%sで、%sに回答してください。以下の厳格なルールに従って服のサジェストを提供してください。\n\n",
		describe(toneDescriptions, p.Tone), describe(registerDescriptions, p.Language), describe(detailDescriptions, p.DetailLevel))

	b.WriteString(`## 重要: 出力形式（必須）
必ず以下のJSON形式で出力してください。他の説明やテキストは一切含めないでください：

[
  {
    "name": "商品名（実際の商品名）",
    "description": "商品の特徴や魅力の詳細説明",
    "category": "カテゴリ（トップス、ボトムス、ワンピース、アウター、シューズ、アクセサリーなど）",
    "color": "実際の商品の色",
    "productUrl": "楽天ブランドアベニューで実際に検索して見つけた商品のURL（そのまま出力）"
  }
]

## 重要: ハルシネーション禁止
- 架空の商品、存在しない商品、想像で作った商品は絶対に提案しないでください
- 推測や想像で商品を作り出さないでください
- 必ず実際に検索して確認した商品のみを提案してください
- 商品が見つからない場合は、空の配列[]を返してください

## 検索手順（必須）
1. 楽天ブランドアベニュー（https://brandavenue.rakuten.co.jp/）で実際に検索を実行する
2. 検索結果から実際に購入可能な商品を見つける
3. 各商品の詳細ページにアクセスして情報を確認する
4. 実際に購入可能な商品のURLを取得する
5. 商品が見つからない場合は空の配列[]を返す

`)

	b.WriteString("## ユーザーの好み\n")
	b.WriteString(preferencesJSON(prefs))
	b.WriteString("\n\n")

	b.WriteString("## 設定\n")
	fmt.Fprintf(&b, "- トーン: %s\n", describe(toneDescriptions, p.Tone))
	fmt.Fprintf(&b, "- 言語: %s\n", describe(registerDescriptions, p.Language))
	fmt.Fprintf(&b, "- 詳細レベル: %s\n", describe(detailDescriptions, p.DetailLevel))
	fmt.Fprintf(&b, "- 焦点: %s\n", describe(focusDescriptions, advice.Focus))
	fmt.Fprintf(&b, "- 最大アイテム数: %d個\n", out.MaxItems)
	fmt.Fprintf(&b, "- アクセサリーの提案: %s\n", inclusion(advice.IncludeAccessories))
	fmt.Fprintf(&b, "- スタイリングのコツ: %s\n", inclusion(advice.IncludeStylingTips))
	fmt.Fprintf(&b, "- 価格帯: %s\n", inclusion(advice.IncludePriceRange))
	fmt.Fprintf(&b, "- ブランドの提案: %s\n", inclusion(advice.IncludeBrandSuggestions))
	fmt.Fprintf(&b, "- 画像の説明: %s\n", inclusion(out.IncludeImages))
	fmt.Fprintf(&b, "- 商品説明: %s\n", inclusion(out.IncludeDescriptions))
	fmt.Fprintf(&b, "- カラーパレット: %s\n", inclusion(out.IncludeColorPalettes))
	fmt.Fprintf(&b, "- 季節のアドバイス: %s\n\n", inclusion(out.IncludeSeasonalAdvice))

	b.WriteString("## カスタム指示\n")
	if strings.TrimSpace(settings.CustomInstructions) == "" {
		b.WriteString("特に指定なし")
	} else {
		b.WriteString(settings.CustomInstructions)
	}
	b.WriteString("\n\n")

	b.WriteString(`## 重要: 出力ルール
1. 必ず上記のJSON形式で出力してください
2. 商品が見つからない場合は空の配列[]を返してください
3. 架空の商品や存在しないURLは絶対に使用しないでください
4. 楽天ブランドアベニューで見つけた商品のURLをそのまま使用してください
5. 他の説明文やテキストは一切含めないでください
6. 必ず有効なJSON形式で出力してください（配列の開始と終了の括弧を含む）
7. ハルシネーションは絶対に禁止されています

## 出力例
以下は正しい出力例です：

[
  {
    "name": "カジュアルTシャツ",
    "description": "綿100%の快適な素材で作られたカジュアルなTシャツ",
    "category": "トップス",
    "color": "白",
    "productUrl": "https://brandavenue.rakuten.co.jp/item/ABC123/"
  }
]

上記の設定に従って、楽天ブランドアベニューで実際に検索して見つけた購入可能な服を提案してください。
必ず実際に検索して確認した商品のみを提案し、ハルシネーションは絶対に禁止されています。`)

	return b.String()
}

func preferencesJSON(prefs domain.Preferences) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// Preferences only holds strings, so encoding cannot fail.
	_ = enc.Encode(prefs)
	return strings.TrimRight(buf.String(), "\n")
}
