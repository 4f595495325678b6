// Package main は Pizza & Pension 登録サーバーのエントリポイントです。
package main

import (
	"os"

	"pizzapension/cmd"
)

// version はビルド時に ldflags で埋め込まれます
var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		os.Exit(1)
	}
}
