package mocks

import "fmt"

// MockLogger は出力を記録するロガー
type MockLogger struct {
	Messages []string
	Warnings []string
}

// Printf はメッセージを記録します
func (l *MockLogger) Printf(format string, a ...any) {
	l.Messages = append(l.Messages, fmt.Sprintf(format, a...))
}

// Warnf は警告を記録します
func (l *MockLogger) Warnf(format string, a ...any) {
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, a...))
}

// Successf はメッセージを記録します
func (l *MockLogger) Successf(format string, a ...any) {
	l.Messages = append(l.Messages, fmt.Sprintf(format, a...))
}
