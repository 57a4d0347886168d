package collections_test

import (
	"log"
	"testing"
)

// The builtin map and slice benchmarks are the baseline for the hamt32 and
// triearray ones.

func BenchmarkMapGet(b *testing.B) {
	log.Printf("BenchmarkMapGet: b.N=%d", b.N)

	for i := 0; i < b.N; i++ {
		var j = i % numKvs
		var s = SVS[j].Str
		var val, ok = LookupMap[s]
		if !ok {
			b.Fatalf("LookupMap[%s] does not exist", s)
		}
		if val != SVS[j].Val {
			b.Fatalf("LookupMap[%s],%d != %d", s, val, SVS[j].Val)
		}
	}
}

func BenchmarkMapPut(b *testing.B) {
	log.Printf("BenchmarkMapPut: b.N=%d", b.N)

	var m = make(map[string]int)
	for i := 0; i < b.N; i++ {
		var j = i % numKvs
		m[SVS[j].Str] = SVS[j].Val
	}
}

func BenchmarkMapDel(b *testing.B) {
	log.Printf("BenchmarkMapDel: b.N=%d", b.N)

	var deleteMap = make(map[string]int, len(LookupMap))
	for k, v := range LookupMap {
		deleteMap[k] = v
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var sv = SVS[i%numKvs]
		delete(deleteMap, sv.Str)

		b.StopTimer()
		deleteMap[sv.Str] = sv.Val
		b.StartTimer()
	}
}

func BenchmarkSliceGet(b *testing.B) {
	log.Printf("BenchmarkSliceGet: b.N=%d", b.N)

	for i := 0; i < b.N; i++ {
		var j = i % numKvs
		if LookupSlice[j] != j {
			b.Fatalf("LookupSlice[%d],%d != %d", j, LookupSlice[j], j)
		}
	}
}

func BenchmarkSliceAppend(b *testing.B) {
	log.Printf("BenchmarkSliceAppend: b.N=%d", b.N)

	var s []int
	for i := 0; i < b.N; i++ {
		s = append(s, i)
	}
}
