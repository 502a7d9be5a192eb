// Package kv 는 대시보드 상태가 기록되는 평탄한 키-값 저장소 포트를 정의한다.
// 값은 항상 JSON 문서이며 키는 컬렉션 이름 하나로 충분하다.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound 키가 존재하지 않을 때 Get 이 돌려주는 오류.
var ErrNotFound = errors.New("kv: key not found")

// Store 키-값 저장소 포트. 구현체는 Memory / Redis / Postgres.
type Store interface {
	// Get 키의 JSON 문서를 돌려준다. 없으면 ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set 키에 JSON 문서를 기록한다.
	Set(ctx context.Context, key string, doc []byte) error
	// Delete 키를 제거한다. 없는 키는 무시한다.
	Delete(ctx context.Context, key string) error
	// Ping 저장소 연결 상태를 확인한다.
	Ping(ctx context.Context) error
	// Close 연결을 정리한다.
	Close() error
}
