package astglsl

import (
	"testing"
)

// ---------------------------------------------------------------------------
// Full pipeline benchmarks
// ---------------------------------------------------------------------------

func BenchmarkTranslateJSON(b *testing.B) {
	data := []byte(addOneJSON)
	opts := DefaultOptions()

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		if _, _, err := TranslateJSON(data, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTranslateJSONWithValidation(b *testing.B) {
	data := []byte(addOneJSON)
	opts := DefaultOptions()
	opts.Validate = true

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		if _, _, err := TranslateJSON(data, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// ---------------------------------------------------------------------------
// Per-stage benchmarks
// ---------------------------------------------------------------------------

func BenchmarkDecode(b *testing.B) {
	data := []byte(addOneJSON)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		if _, err := Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	root, err := Decode([]byte(addOneJSON))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Validate(root); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTranslate(b *testing.B) {
	root, err := Decode([]byte(addOneJSON))
	if err != nil {
		b.Fatal(err)
	}
	opts := DefaultOptions()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := Translate(root, opts); err != nil {
			b.Fatal(err)
		}
	}
}
