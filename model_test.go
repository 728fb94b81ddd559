package huffpack

import (
	"bytes"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func makeTestFrequencies() *Frequencies[rune] {
	var f Frequencies[rune]
	f.Add('a', 5)
	f.Add('b', 2)
	f.Add('c', 1)
	f.Add('d', 1)
	return &f
}

func makeTestModel() *Model[rune] {
	m, err := NewModel(makeTestFrequencies())
	if err != nil {
		panic(err)
	}
	return m
}

func TestModel_Code(t *testing.T) {
	m := makeTestModel()

	type testRow struct {
		sym    rune
		expect string
	}

	testData := [...]testRow{
		{sym: 'a', expect: "1"},
		{sym: 'b', expect: "00"},
		{sym: 'c', expect: "010"},
		{sym: 'd', expect: "011"},
	}
	for _, row := range testData {
		t.Run(string(row.sym), func(t *testing.T) {
			hc, found := m.Code(row.sym)
			if !found {
				t.Fatalf("no code for %q", row.sym)
			}
			expect, _ := ParseCode(row.expect)
			if hc != expect {
				t.Errorf("expected %s, got %s", expect, hc)
			}
			sym, found := m.Symbol(hc)
			if !found || sym != row.sym {
				t.Errorf("expected Symbol(%s) = %q, got %q (found=%v)", hc, row.sym, sym, found)
			}
		})
	}

	if m.MinSize() != 1 || m.MaxSize() != 3 {
		t.Errorf("expected sizes 1 .. 3, got %d .. %d", m.MinSize(), m.MaxSize())
	}
	if _, found := m.Code('z'); found {
		t.Errorf("expected no code for 'z'")
	}
}

func TestModel_Dump(t *testing.T) {
	m := makeTestModel()

	expectDump := strings.Join([]string{
		"Model{\n",
		"\tLen() = 4\n",
		"\tTotal() = 9\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 3\n",
		"\tCode('a') = \"1\" (5)\n",
		"\tCode('b') = \"00\" (2)\n",
		"\tCode('c') = \"010\" (1)\n",
		"\tCode('d') = \"011\" (1)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = m.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestModel_SixSymbols(t *testing.T) {
	var f Frequencies[int]
	for symbol, freq := range []uint32{5, 9, 12, 13, 16, 45} {
		f.Add(symbol, freq)
	}
	m, err := NewModel(&f)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = m.Encoder().Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := make([]byte, f.Len())
	for symbol := range actualSizes {
		hc, _ := m.Code(symbol)
		actualSizes[symbol] = hc.Size
	}
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestModel_TieBreak(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect map[rune]string
	}

	testData := [...]testRow{
		{
			name:   "equal leaves in insertion order",
			input:  "abcd",
			expect: map[rune]string{'a': "00", 'b': "01", 'c': "10", 'd': "11"},
		},
		{
			name:   "equal leaves in reverse order",
			input:  "dcba",
			expect: map[rune]string{'d': "00", 'c': "01", 'b': "10", 'a': "11"},
		},
		{
			name:   "leaf before merged node",
			input:  "abca",
			expect: map[rune]string{'a': "0", 'b': "10", 'c': "11"},
		},
		{
			name:   "counted abacabad",
			input:  "abacabad",
			expect: map[rune]string{'a': "0", 'b': "10", 'c': "110", 'd': "111"},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			m, err := NewModel(Count([]rune(row.input)))
			if err != nil {
				t.Fatalf("NewModel failed: %v", err)
			}
			actual := make(map[rune]string, m.Len())
			for sym := range row.expect {
				hc, _ := m.Code(sym)
				actual[sym] = strings.Trim(hc.String(), `"`)
			}
			if !reflect.DeepEqual(row.expect, actual) {
				t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}

func TestModel_SingleSymbol(t *testing.T) {
	m, err := NewModel(Count([]rune("aaaa")))
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	hc, found := m.Code('a')
	if !found || hc.Size != 0 {
		t.Errorf("expected empty code for 'a', got %s (found=%v)", hc, found)
	}
	if m.MinSize() != 0 || m.MaxSize() != 0 {
		t.Errorf("expected sizes 0 .. 0, got %d .. %d", m.MinSize(), m.MaxSize())
	}
}

func TestModel_Empty(t *testing.T) {
	if _, err := NewModel(Count([]rune(""))); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := NewModel[rune](nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput for nil table, got %v", err)
	}
}

func TestModel_OwnsFrequencies(t *testing.T) {
	f := makeTestFrequencies()
	m, err := NewModel(f)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	f.Add('e', 100)
	if m.Len() != 4 || m.Frequencies().Len() != 4 {
		t.Errorf("model changed with its input table: Len() = %d", m.Len())
	}
}

func randomFrequencies(rng *rand.Rand) *Frequencies[int] {
	var f Frequencies[int]
	numSymbols := 1 + rng.Intn(300)
	for symbol := 0; symbol < numSymbols; symbol++ {
		f.Add(rng.Intn(1000), 1+uint32(rng.Intn(50)))
	}
	return &f
}

func TestModel_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		f := randomFrequencies(rng)
		m, err := NewModel(f)
		if err != nil {
			t.Fatalf("NewModel failed: %v", err)
		}
		codes := make([]Code, 0, f.Len())
		for _, e := range f.Entries() {
			hc, found := m.Code(e.Symbol)
			if !found {
				t.Fatalf("no code for symbol %d", e.Symbol)
			}
			codes = append(codes, hc)
		}
		for i := range codes {
			for j := range codes {
				if i != j && codes[i].HasPrefix(codes[j]) {
					t.Fatalf("code %s has prefix %s", codes[i], codes[j])
				}
			}
		}
	}
}

func TestModel_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 20; iter++ {
		f := randomFrequencies(rng)
		m1, err := NewModel(f)
		if err != nil {
			t.Fatalf("NewModel failed: %v", err)
		}
		m2, err := NewModel(f.Clone())
		if err != nil {
			t.Fatalf("NewModel failed: %v", err)
		}
		if !reflect.DeepEqual(m1.codes, m2.codes) {
			t.Fatalf("code tables differ for identical frequencies")
		}
		if !reflect.DeepEqual(m1.table, m2.table) {
			t.Fatalf("inverse tables differ for identical frequencies")
		}
	}
}
