package uasset

import (
	"slices"
	"testing"
)

func TestScanStrings(t *testing.T) {
	var data []byte
	data = append(data, 0xC1, 0x83, 0x2A, 0x9E, 0x00, 0xFF)
	data = append(data, []byte("PlayerStart")...)
	data = append(data, 0x00, 0x01)
	// "BP_Gate" をUTF-16LEで埋め込む
	for _, c := range []byte("BP_Gate") {
		data = append(data, c, 0x00)
	}
	data = append(data, 0xFE)
	data = append(data, []byte("ab")...) // 短すぎるので除外される
	data = append(data, 0xFF)

	got := ScanStrings(data, 4)

	if !slices.Contains(got, "PlayerStart") {
		t.Errorf("ScanStrings() = %v, want to contain %q", got, "PlayerStart")
	}
	if !slices.Contains(got, "BP_Gate") {
		t.Errorf("ScanStrings() = %v, want to contain %q", got, "BP_Gate")
	}
	if slices.Contains(got, "ab") {
		t.Errorf("ScanStrings() should not contain strings shorter than minLen: %v", got)
	}
}

func TestScanStrings_SortedShortestFirst(t *testing.T) {
	var data []byte
	data = append(data, []byte("LongerNameHere")...)
	data = append(data, 0x00)
	data = append(data, []byte("Door")...)
	data = append(data, 0x00)
	data = append(data, []byte("Gate")...)
	data = append(data, 0x00)

	got := ScanStrings(data, 4)

	want := []string{"Door", "Gate", "LongerNameHere"}
	if !slices.Equal(got, want) {
		t.Errorf("ScanStrings() = %v, want %v", got, want)
	}
}

func TestScanStrings_Deduplicates(t *testing.T) {
	var data []byte
	data = append(data, []byte("SameName")...)
	data = append(data, 0x00)
	data = append(data, []byte("SameName")...)
	data = append(data, 0x00)

	got := ScanStrings(data, 4)

	if len(got) != 1 || got[0] != "SameName" {
		t.Errorf("ScanStrings() = %v, want [SameName]", got)
	}
}

func TestScanStrings_Empty(t *testing.T) {
	if got := ScanStrings(nil, 4); len(got) != 0 {
		t.Errorf("ScanStrings(nil) = %v, want empty", got)
	}
}
