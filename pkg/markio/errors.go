package markio

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfInput は要求したバイト数を読み込む前に入力が尽きた場合のエラー
	ErrEndOfInput = errors.New("入力の終端に達しました")

	// ErrUnsupportedOperation は文字列や文字の読み込みなど未対応の操作のエラー
	ErrUnsupportedOperation = errors.New("サポートされていない操作です")

	// ErrInvalidState は鍵が導出されていないなど、読み込みできない状態のエラー
	ErrInvalidState = errors.New("リーダーの状態が不正です")

	// ErrEmptyPassword はパスワードが設定されていない場合のエラー
	ErrEmptyPassword = errors.New("パスワードが指定されていません")

	// ErrInvalidSalt はソルトの長さが8バイトでない場合のエラー
	ErrInvalidSalt = errors.New("ソルトは8バイトである必要があります")

	// ErrInvalidCount は負のバイト数を要求した場合のエラー
	ErrInvalidCount = errors.New("読み込みバイト数が不正です")

	// ErrInvalidDecimal は decimal のフラグ領域が不正な場合のエラー
	ErrInvalidDecimal = errors.New("decimal の値が不正です")
)

// ReadError は下位ソースの読み込みやシークに失敗した場合のエラー
type ReadError struct {
	Op     string // 実行していた操作
	Offset int64  // 操作開始時のソース上の位置
	Err    error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *ReadError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s (offset %d): %v", e.Op, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *ReadError) Unwrap() error {
	return e.Err
}

func newReadError(op string, offset int64, err error) *ReadError {
	return &ReadError{
		Op:     op,
		Offset: offset,
		Err:    err,
	}
}
