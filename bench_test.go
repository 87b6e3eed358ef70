package jsonx

import (
	"strings"
	"testing"
)

var benchDocument = `{"id":1,"name":"John","tags":["a","b","c"],"score":125.567,"active":true,` +
	`"items":[` + strings.TrimSuffix(strings.Repeat(`{"sku":"x-1","qty":2,"price":3.5,"note":null},`, 20), ",") + `]}`

// Benchmark parsing a mid-sized document.
func BenchmarkParseString(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseString(benchDocument); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark serializing a parsed document with pooled encoder buffers.
func BenchmarkMarshal(b *testing.B) {
	value, err := ParseString(benchDocument)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = Marshal(value, WithCompact()); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark struct conversion hitting the cached field plan.
func BenchmarkFromInterface_Struct(b *testing.B) {
	type Item struct {
		Sku   string  `json:"sku"`
		Qty   int     `json:"qty"`
		Price float64 `json:"price,omitempty"`
	}
	type Order struct {
		ID    int
		Items []Item
	}
	order := Order{ID: 1, Items: make([]Item, 20)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FromInterface(order); err != nil {
			b.Fatal(err)
		}
	}
}
