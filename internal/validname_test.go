package internal

import "testing"

func TestGood(t *testing.T) {
	var goodStrings = []string{
		"t",
		"hgt",
		"t2m",
		"U_10M",
		"rh2m_max",
	}
	for i := range goodStrings {
		if !IsValidVarName(goodStrings[i]) {
			t.Error("name should be good", goodStrings[i])
			return
		}
	}
}

func TestBad(t *testing.T) {
	var badStrings = []string{
		"",
		"_t",
		"2t",
		"t-2m",
		"t 2",
		"°C",
	}
	for i := range badStrings {
		if IsValidVarName(badStrings[i]) {
			t.Error("name should be bad", badStrings[i])
			return
		}
	}
}
