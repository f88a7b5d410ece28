package application

import "fashion-advisor/backend/internal/features/suggestion/domain"

// FallbackCatalog returns the fixed suggestions used when the model cannot be
// reached or its reply yields nothing. Each call returns a fresh slice.
func FallbackCatalog() []domain.Suggestion {
	return []domain.Suggestion{
		{
			ID:          "1",
			Name:        "カジュアルなデニムジャケット",
			Description: "日常使いに最適な軽やかなデニムジャケット",
			Category:    "アウター",
			Color:       "blue",
			ProductURL:  "https://www.zara.com/jp/ja/denim-jacket-p00000000.html",
			ImageURL:    PlaceholderImage("デニムジャケット", "アウター"),
		},
		{
			ID:          "2",
			Name:        "エレガントなワンピース",
			Description: "パーティーやデートにぴったりのエレガントなワンピース",
			Category:    "ワンピース",
			Color:       "black",
			ProductURL:  "https://www.hm.com/jp/productpage.12345678.html",
			ImageURL:    PlaceholderImage("ワンピース", "ワンピース"),
		},
		{
			ID:          "3",
			Name:        "スポーティなトレーナー",
			Description: "スポーツやカジュアルな場面で活躍するトレーナー",
			Category:    "トップス",
			Color:       "gray",
			ProductURL:  "https://www.uniqlo.com/jp/ja/products/E4567890123.html",
			ImageURL:    PlaceholderImage("トレーナー", "トップス"),
		},
		{
			ID:          "4",
			Name:        "ビジネスカジュアルなシャツ",
			Description: "仕事でもプライベートでも使える万能なシャツ",
			Category:    "トップス",
			Color:       "white",
			ProductURL:  "https://www.muji.com/jp/ja/products/4550000000000.html",
			ImageURL:    PlaceholderImage("シャツ", "トップス"),
		},
		{
			ID:          "5",
			Name:        "クラシックなチノパンツ",
			Description: "カジュアルからビジネスまで幅広く使える万能パンツ",
			Category:    "ボトムス",
			Color:       "beige",
			ProductURL:  "https://www.gap.co.jp/product/123456.html",
			ImageURL:    PlaceholderImage("チノパンツ", "ボトムス"),
		},
		{
			ID:          "6",
			Name:        "スタイリッシュなスニーカー",
			Description: "どんなコーディネートにも合わせやすい白いスニーカー",
			Category:    "シューズ",
			Color:       "white",
			ProductURL:  "https://www.converse.com/jp/ja/products/123456C.html",
			ImageURL:    PlaceholderImage("スニーカー", "シューズ"),
		},
	}
}
