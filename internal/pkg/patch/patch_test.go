package patch

import (
	"context"
	"testing"

	"github.com/go-baas-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID      string
	Email   string
	Enabled bool
}

type fakeCollection struct {
	items map[string]widget
	puts  int
}

func (f *fakeCollection) Get(_ context.Context, id string) (*widget, error) {
	w, ok := f.items[id]
	if !ok {
		return nil, domain.NewFault(domain.ErrNotFound, "Widget w/ id=%s Not Found", id)
	}
	return &w, nil
}

func (f *fakeCollection) Put(_ context.Context, w widget) error {
	f.puts++
	f.items[w.ID] = w
	return nil
}

var widgetFields = Fields[widget]{
	"email":   String(func(w *widget) *string { return &w.Email }, "email", "required,email"),
	"enabled": Bool(func(w *widget) *bool { return &w.Enabled }, "enabled"),
}

func newColl() *fakeCollection {
	return &fakeCollection{items: map[string]widget{"w1": {ID: "w1", Email: "old@x.com"}}}
}

func replace(path string, value any) domain.PatchOperation {
	return domain.PatchOperation{Op: domain.PatchReplace, Path: path, Value: value}
}

func TestApply_ReplacesOneField(t *testing.T) {
	coll := newColl()
	got, err := Apply[widget](context.Background(), coll, widgetFields, "w1", replace("email", "a@b.com"))
	require.NoError(t, err)
	assert.Equal(t, widget{ID: "w1", Email: "a@b.com"}, *got)
	assert.Equal(t, *got, coll.items["w1"])
}

func TestApply_Idempotent(t *testing.T) {
	coll := newColl()
	op := replace("email", "a@b.com")
	first, err := Apply[widget](context.Background(), coll, widgetFields, "w1", op)
	require.NoError(t, err)
	second, err := Apply[widget](context.Background(), coll, widgetFields, "w1", op)
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
	assert.Equal(t, *first, coll.items["w1"])
}

func TestApply_UnknownID(t *testing.T) {
	coll := newColl()
	_, err := Apply[widget](context.Background(), coll, widgetFields, "nope", replace("email", "a@b.com"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, coll.puts)
}

func TestApply_UnsupportedOps(t *testing.T) {
	for _, op := range []domain.PatchOp{domain.PatchAdd, domain.PatchRemove, domain.PatchMove} {
		coll := newColl()
		_, err := Apply[widget](context.Background(), coll, widgetFields, "w1",
			domain.PatchOperation{Op: op, Path: "email", Value: "a@b.com"})
		assert.ErrorIs(t, err, domain.ErrUnsupportedOperation, string(op))
		assert.Zero(t, coll.puts)
	}
}

func TestApply_UndeclaredPath(t *testing.T) {
	coll := newColl()
	_, err := Apply[widget](context.Background(), coll, widgetFields, "w1", replace("isAdmin", true))
	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Zero(t, coll.puts)
	assert.Equal(t, widget{ID: "w1", Email: "old@x.com"}, coll.items["w1"])
}

func TestApply_ValueTypeMismatch(t *testing.T) {
	coll := newColl()
	_, err := Apply[widget](context.Background(), coll, widgetFields, "w1", replace("email", 42))
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = Apply[widget](context.Background(), coll, widgetFields, "w1", replace("enabled", "yes"))
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Zero(t, coll.puts)
}

func TestApply_ValueFailsValidation(t *testing.T) {
	coll := newColl()
	_, err := Apply[widget](context.Background(), coll, widgetFields, "w1", replace("email", "not-an-email"))
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Equal(t, "old@x.com", coll.items["w1"].Email)
}

func TestApply_Bool(t *testing.T) {
	coll := newColl()
	got, err := Apply[widget](context.Background(), coll, widgetFields, "w1", replace("enabled", true))
	require.NoError(t, err)
	assert.True(t, got.Enabled)
}
