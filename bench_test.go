package jsonbuild

import (
	"encoding/json"
	"testing"
)

type benchRecord struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Active bool    `json:"active"`
	Tags   []int64 `json:"tags"`
}

func buildBenchRecord(b *Builder, id int64) {
	b.StartObject().
		AddInt("id", id).
		AddString("name", "user-name with \"quotes\"").
		AddFloat("score", 12.5).
		AddBool("active", true).
		Key("tags").StartArray().ValueInt(1).ValueInt(2).ValueInt(3).EndArray().
		EndObject()
}

func BenchmarkBuilder(b *testing.B) {
	var jb Builder
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		jb.Clear()
		buildBenchRecord(&jb, int64(i))
	}
}

func BenchmarkBuilderPooled(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		jb := Borrow()
		buildBenchRecord(jb, int64(i))
		Return(jb)
	}
}

func BenchmarkEncodingJSON(b *testing.B) {
	rec := benchRecord{
		Name:   "user-name with \"quotes\"",
		Score:  12.5,
		Active: true,
		Tags:   []int64{1, 2, 3},
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rec.ID = int64(i)
		if _, err := json.Marshal(&rec); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEscape(b *testing.B) {
	s := "a longer message body\nwith a few \"escapes\" and a \\ path\there"
	var jb Builder
	b.ReportAllocs()
	b.SetBytes(int64(len(s)))
	for i := 0; i < b.N; i++ {
		jb.Clear()
		jb.appendEscaped(s)
	}
}
