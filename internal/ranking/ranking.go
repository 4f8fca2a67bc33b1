// Package ranking は取得済みの業者リストを表示順に並べ替える純粋関数群です。
// 入力スライスは変更しません。
package ranking

import (
	"slices"
	"sort"

	"iejimai_com/internal/model"
)

// Strategy は並び替えタブに対応する戦略名
type Strategy string

const (
	StrategyRecommended Strategy = "recommended" // おすすめ順
	StrategyReviews     Strategy = "reviews"     // 口コミ順
	StrategyPrice       Strategy = "price"       // 価格が安い順
	StrategyRealEstate  Strategy = "realestate"  // 不動産提携あり
)

// ParseStrategy はクエリ文字列を戦略に変換します。空文字はおすすめ順
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyRecommended, StrategyReviews, StrategyPrice, StrategyRealEstate:
		return Strategy(s), nil
	case "":
		return StrategyRecommended, nil
	default:
		return "", model.ErrInvalidInput
	}
}

// Sort は戦略に従って新しいスライスを返します。
//   - recommended / reviews: 評価の降順。同値は元の並びを維持（安定ソート）
//   - price: min_price の昇順。min_price が null の業者は価格順位を持たず、
//     元の相対順のまま末尾に付く
//   - realestate: 不動産提携ありに絞った上で評価の降順
func Sort(vendors []*model.Vendor, strategy Strategy) []*model.Vendor {
	switch strategy {
	case StrategyPrice:
		priced := make([]*model.Vendor, 0, len(vendors))
		unpriced := make([]*model.Vendor, 0)
		for _, v := range vendors {
			if v.MinPrice != nil {
				priced = append(priced, v)
			} else {
				unpriced = append(unpriced, v)
			}
		}
		sort.SliceStable(priced, func(i, j int) bool {
			return *priced[i].MinPrice < *priced[j].MinPrice
		})
		return append(priced, unpriced...)
	case StrategyRealEstate:
		out := make([]*model.Vendor, 0, len(vendors))
		for _, v := range vendors {
			if v.HasRealEstatePartnership {
				out = append(out, v)
			}
		}
		sortByRatingDesc(out)
		return out
	default: // recommended / reviews
		out := slices.Clone(vendors)
		sortByRatingDesc(out)
		return out
	}
}

// ForArea は service_areas に指定slugを含む業者だけを元の並びのまま返します。
// 並び替えは行わない（呼び出し側が別途ソートする）
func ForArea(vendors []*model.Vendor, areaSlug string) []*model.Vendor {
	out := make([]*model.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if slices.Contains(v.ServiceAreas, areaSlug) {
			out = append(out, v)
		}
	}
	return out
}

// Ranked は Sort の結果に1始まりの表示順位を付けて返します。
// 順位はソート後の位置そのもので、同じ入力に対して常に同じ結果になります
func Ranked(vendors []*model.Vendor, strategy Strategy) []model.RankedVendor {
	sorted := Sort(vendors, strategy)
	ranked := make([]model.RankedVendor, len(sorted))
	for i, v := range sorted {
		ranked[i] = model.RankedVendor{Rank: i + 1, Vendor: v}
	}
	return ranked
}

func sortByRatingDesc(vendors []*model.Vendor) {
	sort.SliceStable(vendors, func(i, j int) bool {
		return vendors[i].Rating > vendors[j].Rating
	})
}
