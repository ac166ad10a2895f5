package memo_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/fun/memo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemoOf(t *testing.T) {
	var calls int32
	square := memo.Of(func(n int) int {
		atomic.AddInt32(&calls, 1)
		return n * n
	})
	if square(7) != 49 {
		t.Errorf("expected square(7) to be 49, is %d", square(7))
	}
	square(7)
	square(7)
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("expected a single underlying call for 7, got %d", calls)
	}
	if square(8) != 64 {
		t.Error("expected square(8) to be 64, isn't")
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected two underlying calls, got %d", calls)
	}
}

func TestMemoConcurrent(t *testing.T) {
	var calls int32
	double := memo.Of(func(n int) int {
		atomic.AddInt32(&calls, 1)
		return n * 2
	})
	wg := sync.WaitGroup{}
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				if double(n) != n*2 {
					t.Errorf("expected double(%d) to be %d", n, n*2)
				}
			}
		}()
	}
	wg.Wait()
	// redundant computations may happen, but every published value is right
	// and re-reading is cheap
	if double(50) != 100 {
		t.Error("expected cached double(50) to be 100, isn't")
	}
}

func TestMemoOfErr(t *testing.T) {
	var calls int32
	flaky := memo.OfErr(func(n int) (int, error) {
		c := atomic.AddInt32(&calls, 1)
		if c == 1 {
			return 0, errors.New("transient")
		}
		return n * 10, nil
	})
	_, err := flaky(7)
	if err == nil {
		t.Fatal("expected first call to fail, didn't")
	}
	// errors are not cached: the second call retries and succeeds
	v, err := flaky(7)
	assert.NoError(t, err)
	assert.Equal(t, 70, v)
	// success is cached from now on
	v, err = flaky(7)
	assert.NoError(t, err)
	assert.Equal(t, 70, v)
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected two underlying calls, got %d", calls)
	}
}

func TestMemoFibonacci(t *testing.T) {
	var fib func(n int) int
	mfib := memo.Of(func(n int) int {
		return fib(n)
	})
	fib = func(n int) int {
		if n < 2 {
			return n
		}
		return mfib(n-1) + mfib(n-2)
	}
	if mfib(40) != 102334155 {
		t.Errorf("expected fib(40) to be 102334155, is %d", mfib(40))
	}
}
