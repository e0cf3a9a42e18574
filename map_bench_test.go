package chainmap

import (
	"strconv"
	"testing"
)

const benchSize = 1 << 16

func benchKeys() []string {
	keys := make([]string, benchSize)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}

	return keys
}

func BenchmarkMapPut(b *testing.B) {
	keys := benchKeys()

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[string]int, benchSize)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m[keys[i%benchSize]] = i
		}
	})

	b.Run("variant=chainMap", func(b *testing.B) {
		cm := New(WithCapacity[string, int](benchSize))

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			cm.Put(keys[i%benchSize], i)
		}
	})
}

func BenchmarkMapGet_Hit(b *testing.B) {
	keys := benchKeys()

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[string]int, benchSize)
		for i, k := range keys {
			m[k] = i
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = m[keys[i%benchSize]]
		}
	})

	b.Run("variant=chainMap", func(b *testing.B) {
		cm := New(WithCapacity[string, int](benchSize))
		for i, k := range keys {
			cm.Put(k, i)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			cm.Get(keys[i%benchSize])
		}
	})
}

func BenchmarkMapGet_Miss(b *testing.B) {
	keys := benchKeys()

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[string]int, benchSize)
		for i, k := range keys {
			m[k] = i
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = m["miss-"+keys[i%benchSize]]
		}
	})

	b.Run("variant=chainMap", func(b *testing.B) {
		cm := New(WithCapacity[string, int](benchSize))
		for i, k := range keys {
			cm.Put(k, i)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			cm.Get("miss-" + keys[i%benchSize])
		}
	})
}
