package gomap

import (
	"errors"
	"testing"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
)

func TestToIRBasicTypes(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		wantJSON string
	}{
		{"nil", nil, "null"},
		{"bool", true, "true"},
		{"int", 18, "18"},
		{"int64", int64(123456789), "123456789"},
		{"uint", uint(99), "99"},
		{"float", 9.18, "9.18"},
		{"small float", 0.2, "0.2"},
		{"string", "hello", `"hello"`},
		{"slice", []int{1, 2, 3}, "[1,2,3]"},
		{"nil slice", []int(nil), "[]"},
		{"array", [2]string{"a", "b"}, `["a","b"]`},
		{"slice of interface", []interface{}{1, 2}, "[1,2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ToIR(tt.input)
			if err != nil {
				t.Fatalf("ToIR() error: %v", err)
			}
			if got := encode.JSON(node); got != tt.wantJSON {
				t.Errorf("JSON = %q, want %q", got, tt.wantJSON)
			}
		})
	}
}

func TestToIRStringMap(t *testing.T) {
	node, err := ToIR(map[string]int{"b": 2, "a": 1})
	if err != nil {
		t.Fatal(err)
	}
	// Map members come out sorted by key.
	if got := encode.JSON(node); got != `{"a":1,"b":2}` {
		t.Errorf("JSON = %q", got)
	}
}

func TestToIRNonStringMapKeys(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"int keys", map[int]string{1: "a"}},
		{"bool keys", map[bool]string{true: "a"}},
		{"interface keys", map[interface{}]string{"a": "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToIR(tt.input)
			if !errors.Is(err, ErrMapKeys) {
				t.Fatalf("err = %v, want ErrMapKeys", err)
			}
			if err.Error() != "Map keys must be Strings" {
				t.Errorf("message = %q", err.Error())
			}
		})
	}
}

type evalType int

const (
	examType evalType = iota
	projectType
)

func (t evalType) String() string {
	switch t {
	case examType:
		return "EXAM"
	case projectType:
		return "PROJECT"
	}
	return "UNKNOWN"
}

func TestToIREnum(t *testing.T) {
	node, err := ToIR(projectType)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type() != ir.StringType || node.AsString() != "PROJECT" {
		t.Errorf("enum converted to %s %q", node.Type(), node.AsString())
	}
}

type evalItem struct {
	Name       string    `jdoc:"name"`
	Percentage float64   `jdoc:"percentage"`
	Mandatory  bool      `jdoc:"mandatory"`
	Type       *evalType `jdoc:"type"`
}

type courseUnit struct {
	Name       string     `jdoc:"name"`
	Credits    int        `jdoc:"credits"`
	Evaluation []evalItem `jdoc:"evaluation"`
}

func TestToIRNestedRecord(t *testing.T) {
	project := projectType
	course := courseUnit{
		Name:    "PA",
		Credits: 6,
		Evaluation: []evalItem{
			{Name: "quizzes", Percentage: 0.2, Mandatory: false, Type: nil},
			{Name: "project", Percentage: 0.8, Mandatory: true, Type: &project},
		},
	}
	node, err := ToIR(course)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"PA","credits":6,"evaluation":[` +
		`{"name":"quizzes","percentage":0.2,"mandatory":false,"type":null},` +
		`{"name":"project","percentage":0.8,"mandatory":true,"type":"PROJECT"}]}`
	if got := encode.JSON(node); got != want {
		t.Errorf("JSON = %q\nwant %q", got, want)
	}
	if !ir.Validate(node) {
		t.Errorf("converted record does not validate")
	}
}

func TestToIRDeclaredFieldOrder(t *testing.T) {
	// Field order must follow the declaration, not the alphabet.
	type zFirst struct {
		Zeta  int
		Alpha int
		Mid   int
	}
	node, err := ToIR(zFirst{Zeta: 1, Alpha: 2, Mid: 3})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.JSON(node); got != `{"Zeta":1,"Alpha":2,"Mid":3}` {
		t.Errorf("JSON = %q", got)
	}
}

func TestToIRFieldTags(t *testing.T) {
	type tagged struct {
		Kept    string `jdoc:"kept"`
		Skipped string `jdoc:"-"`
		Plain   string
	}
	node, err := ToIR(tagged{Kept: "a", Skipped: "b", Plain: "c"})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.JSON(node); got != `{"kept":"a","Plain":"c"}` {
		t.Errorf("JSON = %q", got)
	}
}

func TestToIRSkipsUnexportedFields(t *testing.T) {
	type rec struct {
		Name string
		note string
	}
	node, err := ToIR(rec{Name: "a", note: "hidden"})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.JSON(node); got != `{"Name":"a"}` {
		t.Errorf("JSON = %q", got)
	}
}

func TestToIREmbeddedStruct(t *testing.T) {
	type base struct {
		ID int `jdoc:"id"`
	}
	type outer struct {
		base
		Name string `jdoc:"name"`
	}
	node, err := ToIR(outer{base: base{ID: 1}, Name: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.JSON(node); got != `{"id":1,"name":"x"}` {
		t.Errorf("JSON = %q", got)
	}
}

func TestToIREmbeddedMixedExport(t *testing.T) {
	// Flattening does not depend on the case of the embedded type's
	// name: both promote their exported fields in place.
	type base struct {
		ID int `jdoc:"id"`
	}
	type Meta struct {
		Rev int `jdoc:"rev"`
	}
	type outer struct {
		base
		Meta
		Name string `jdoc:"name"`
	}
	node, err := ToIR(outer{base: base{ID: 1}, Meta: Meta{Rev: 2}, Name: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.JSON(node); got != `{"id":1,"rev":2,"name":"x"}` {
		t.Errorf("JSON = %q", got)
	}
}

func TestToIREmptyStruct(t *testing.T) {
	type none struct{}
	node, err := ToIR(none{})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.JSON(node); got != "{}" {
		t.Errorf("JSON = %q", got)
	}
}

func TestToIRNilPointer(t *testing.T) {
	var p *courseUnit
	node, err := ToIR(p)
	if err != nil {
		t.Fatal(err)
	}
	if !node.IsNull() {
		t.Errorf("nil pointer converted to %s", node.Type())
	}
}

func TestToIRUnsupportedShape(t *testing.T) {
	_, err := ToIR(make(chan int))
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want *MarshalError", err)
	}
}

type cyclic struct {
	Name string
	Next *cyclic
}

func TestToIRCycleDetection(t *testing.T) {
	a := &cyclic{Name: "a"}
	a.Next = a
	_, err := ToIR(a)
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want *MarshalError", err)
	}
}
