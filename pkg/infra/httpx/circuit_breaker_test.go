package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_ExecuteSuccess(t *testing.T) {
	breaker := NewCircuitBreaker("success-test", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		return nil
	})

	assert.NoError(t, err)
}

func TestCircuitBreaker_ExecuteFailureWrapsName(t *testing.T) {
	breaker := NewCircuitBreaker("failure-test", 30*time.Second, 3)
	testError := errors.New("upstream unavailable")

	err := breaker.Execute(func() error {
		return testError
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failure-test")
	assert.Contains(t, err.Error(), testError.Error())
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewCircuitBreaker("open-test", 30*time.Second, 2)
	wrapper, _ := breaker.(*circuitBreakerWrapper) //nolint:errcheck

	for i := 0; i < 2; i++ {
		err := breaker.Execute(func() error {
			return errors.New("failure")
		})
		assert.Error(t, err)
	}

	assert.Equal(t, gobreaker.StateOpen, wrapper.breaker.State())

	err := breaker.Execute(func() error {
		return nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}

func TestCircuitBreaker_RecoversAfterTimeout(t *testing.T) {
	breaker := NewCircuitBreaker("recovery-test", 50*time.Millisecond, 1)

	err := breaker.Execute(func() error {
		return errors.New("trigger failure")
	})
	assert.Error(t, err)

	time.Sleep(100 * time.Millisecond)

	err = breaker.Execute(func() error {
		return nil
	})
	assert.NoError(t, err)
}

func TestCircuitBreaker_RecoversPanic(t *testing.T) {
	breaker := NewCircuitBreaker("panic-test", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		panic("boom")
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered:")
}
