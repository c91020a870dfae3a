package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		node  Node
		class Class
		shape Shape
	}{
		{"nil", nil, ClassScalar, ShapePrimitive},
		{"string", String("x"), ClassScalar, ShapePrimitive},
		{"absent", Absent{}, ClassScalar, ShapePrimitive},
		{"list", List{String("a")}, ClassList, ShapeList},
		{"block", Block("b1"), ClassEntity, ShapeObject},
		{"elem", Elem("e1"), ClassEntity, ShapeObject},
		{"plain object", &Component{Tag: "div"}, ClassObject, ShapeObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, Classify(tt.node))
			assert.Equal(t, tt.shape, ShapeOf(tt.node))
		})
	}
}

func TestMerge(t *testing.T) {
	assert.Nil(t, Merge(nil, nil))
	assert.Equal(t, map[string]string{"a": "1"}, Merge(nil, map[string]string{"a": "1"}))

	dst := map[string]string{"a": "1", "b": "2"}
	got := Merge(dst, map[string]string{"b": "3", "c": "4"})
	assert.Equal(t, map[string]string{"a": "1", "b": "3", "c": "4"}, got)
}

func TestJoin(t *testing.T) {
	a, b := Block("a"), Block("b")

	tests := []struct {
		name  string
		parts []Node
		want  List
	}{
		{"scalar then nil", []Node{String("x"), nil}, List{String("x")}},
		{"node then scalar", []Node{a, String("x")}, List{a, String("x")}},
		{"node then list", []Node{a, List{b, String("x")}}, List{a, b, String("x")}},
		{"list then node", []Node{List{b}, a}, List{b, a}},
		{"skips absent", []Node{Absent{}, a}, List{a}},
		{"empty", nil, List{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.parts...))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Component", Block("b").Kind().String())
	assert.Equal(t, "List", List{}.Kind().String())
	assert.Equal(t, "Absent", Absent{}.Kind().String())
	assert.Equal(t, "Scalar", Null().Kind().String())
	assert.Equal(t, "Unknown", Kind(42).String())
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{"x", "x", true},
		{true, "true", true},
		{false, "false", true},
		{json.Number("12"), "12", true},
		{1.5, "1.5", true},
		{3, "3", true},
		{nil, "", false},
		{[]any{}, "", false},
	}
	for _, tt := range tests {
		got, ok := ScalarString(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}
