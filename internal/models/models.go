// Package models は参加登録と管理者アカウントのデータ構造を定義します。
package models

import "time"

// User は管理者アカウントです
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}

// NewRegistration は参加者が入力する登録項目です
type NewRegistration struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Pizza     string `json:"pizza" form:"pizza"`
	Drink     string `json:"drink" form:"drink"`
}

// Registration は保存済みの登録です。ID と CreatedAt は保存時に割り当てられ、以後変わりません
type Registration struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Pizza     string    `json:"pizza"`
	Drink     string    `json:"drink"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultCapacity はイベントの定員です
const DefaultCapacity = 18

// PizzaMenu はフォームで選べるピザの一覧です
var PizzaMenu = []string{
	"Hawaii",
	"Kebabpizza",
	"Tomaso",
	"La Maffia",
	"Capriciosa",
	"Cacciatora",
	"Vesuvio",
}

// OnMenu は pizza が PizzaMenu に含まれるかを返します
func OnMenu(pizza string) bool {
	for _, p := range PizzaMenu {
		if p == pizza {
			return true
		}
	}
	return false
}
