package fileutil

import "errors"

var (
	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("出力先ディレクトリの作成に失敗しました")

	// ErrWriteContent は内容の書き込みに失敗した場合のエラー
	ErrWriteContent = errors.New("内容の書き込みに失敗しました")

	// ErrSourceNotFound はソースファイルが見つからない場合のエラー
	ErrSourceNotFound = errors.New("ソースファイルが見つかりません")

	// ErrOpenSource はソースファイルを開けない場合のエラー
	ErrOpenSource = errors.New("ソースファイルを開けませんでした")
)
