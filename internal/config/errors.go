package config

import "errors"

var (
	// ErrPasswordRequired はパスワードが設定されていない場合のエラー
	ErrPasswordRequired = errors.New("パスワードが指定されていません。--password または RARMARK_PASSWORD を設定してください")

	// ErrInvalidSalt はソルトが16桁の16進数でない場合のエラー
	ErrInvalidSalt = errors.New("ソルトは16桁の16進数で指定してください")

	// ErrInvalidRange はオフセットや長さが不正な場合のエラー
	ErrInvalidRange = errors.New("読み込み範囲の指定が不正です")

	// ErrReadConfig は設定ファイルの読み込みに失敗した場合のエラー
	ErrReadConfig = errors.New("設定ファイルの読み込みに失敗しました")
)
