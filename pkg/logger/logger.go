package logger

import "go.uber.org/zap"

// NewLogger 프로덕션 설정의 zap 로거를 만든다.
func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}

// NewDevLogger 개발용 로거. 사람이 읽기 좋은 콘솔 출력.
func NewDevLogger() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return l
}
