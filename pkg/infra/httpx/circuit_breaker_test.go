package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreakerWrapper_Execute_Success(t *testing.T) {
	breaker := NewCircuitBreaker("success-test", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		return nil
	})

	assert.NoError(t, err)
}

func TestCircuitBreakerWrapper_Execute_Failure(t *testing.T) {
	breaker := NewCircuitBreaker("failure-test", 30*time.Second, 3)
	testError := errors.New("test error")

	err := breaker.Execute(func() error {
		return testError
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failure-test")
	assert.ErrorIs(t, err, testError)
}

func TestCircuitBreakerWrapper_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewCircuitBreaker("open-test", 30*time.Second, 2)
	testError := errors.New("boom")

	for i := 0; i < 2; i++ {
		_ = breaker.Execute(func() error { return testError })
	}

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}
