package app

import "errors"

var (
	// ErrReadSpan は暗号化範囲の読み込みに失敗した場合のエラー
	ErrReadSpan = errors.New("指定範囲の読み込みに失敗しました")

	// ErrSeekSource はソースのオフセットへの移動に失敗した場合のエラー
	ErrSeekSource = errors.New("ソースのオフセットへ移動できませんでした")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")

	// ErrSaltRequired はソルトが必要な操作でソルトがない場合のエラー
	ErrSaltRequired = errors.New("ソルトが指定されていません")

	// ErrEmptyLayout はレイアウトが空の場合のエラー
	ErrEmptyLayout = errors.New("レイアウトが指定されていません")

	// ErrUnknownKind はレイアウトに未知の型名がある場合のエラー
	ErrUnknownKind = errors.New("未知の型名です")
)
