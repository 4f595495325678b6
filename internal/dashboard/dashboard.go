// Package dashboard は登録一覧から管理画面の集計を作ります。
package dashboard

import (
	"strings"

	"pizzapension/internal/models"
)

// Slice は分布の一つのグループです
type Slice struct {
	Name    string  `json:"name"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
}

// Summary はダッシュボードが登録一覧の上に表示する内容です
type Summary struct {
	Total     int     `json:"total"`
	Capacity  int     `json:"capacity"`
	Remaining int     `json:"remaining"`
	Pizza     []Slice `json:"pizza"`
	Drink     []Slice `json:"drink"`
}

// Summarize は定員に対する登録数を数えます。定員を超えると Remaining は負になります
func Summarize(regs []models.Registration, capacity int) Summary {
	return Summary{
		Total:     len(regs),
		Capacity:  capacity,
		Remaining: capacity - len(regs),
		Pizza:     PizzaDistribution(regs),
		Drink:     DrinkDistribution(regs),
	}
}

// PizzaDistribution はピザ名の完全一致でグループ化します。順序は初出順です
func PizzaDistribution(regs []models.Registration) []Slice {
	return distribute(regs, func(r models.Registration) string { return r.Pizza })
}

// DrinkDistribution は大文字小文字と前後の空白を無視して飲み物をグループ化します。
// ラベルは最初に現れた表記です
func DrinkDistribution(regs []models.Registration) []Slice {
	return distribute(regs, func(r models.Registration) string { return r.Drink }, normalizeDrink)
}

func normalizeDrink(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func distribute(regs []models.Registration, field func(models.Registration) string, normalize ...func(string) string) []Slice {
	slices := []Slice{}
	index := make(map[string]int)

	for _, r := range regs {
		name := field(r)
		key := name
		for _, n := range normalize {
			key = n(key)
		}
		if i, ok := index[key]; ok {
			slices[i].Value++
			continue
		}
		index[key] = len(slices)
		slices = append(slices, Slice{Name: name, Value: 1})
	}

	for i := range slices {
		slices[i].Percent = float64(slices[i].Value) * 100 / float64(len(regs))
	}
	return slices
}
