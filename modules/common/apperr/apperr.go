package apperr

import (
	"errors"
	"fmt"
)

// Kind - 파이프라인에서 발생하는 에러 종류 (닫힌 집합)
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingInput
	KindGenerationFailed
	KindSynthesisFailed
	KindRenderFailed
	KindTimeout
	KindDownloadFailed
)

// String - 로그용 Kind 이름
func (k Kind) String() string {
	switch k {
	case KindMissingInput:
		return "missing_input"
	case KindGenerationFailed:
		return "generation_failed"
	case KindSynthesisFailed:
		return "synthesis_failed"
	case KindRenderFailed:
		return "render_failed"
	case KindTimeout:
		return "timeout"
	case KindDownloadFailed:
		return "download_failed"
	default:
		return "unknown"
	}
}

// Error - Kind와 원인을 함께 들고 다니는 에러
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New - Kind와 메시지로 에러 생성
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap - 원인 에러를 감싸서 Kind를 부여
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf - 에러 체인에서 Kind 추출 (없으면 KindUnknown)
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind - 에러가 특정 Kind인지 확인
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
