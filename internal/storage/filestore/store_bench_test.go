package filestore

import (
	"encoding/json"
	"fmt"
	"testing"
)

// BenchmarkStoreSet benchmarks the temp file and rename write path.
func BenchmarkStoreSet(b *testing.B) {
	s := New(b.TempDir())
	value := map[string]any{"width": json.Number("120"), "theme": "dark"}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := s.Set("window", value); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}
}

// BenchmarkStoreGet benchmarks reading and decoding one setting.
func BenchmarkStoreGet(b *testing.B) {
	s := New(b.TempDir())
	if err := s.Set("window", map[string]any{"width": json.Number("120")}); err != nil {
		b.Fatalf("Set failed: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := s.Get("window"); err != nil {
			b.Fatalf("Get failed: %v", err)
		}
	}
}

// BenchmarkStoreNames benchmarks listing a directory of settings.
func BenchmarkStoreNames(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("settings=%d", n), func(b *testing.B) {
			s := New(b.TempDir())
			for i := 0; i < n; i++ {
				if err := s.Set(fmt.Sprintf("setting-%04d", i), i); err != nil {
					b.Fatalf("Set failed: %v", err)
				}
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := s.Names(); err != nil {
					b.Fatalf("Names failed: %v", err)
				}
			}
		})
	}
}
