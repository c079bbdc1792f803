package serializer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Link(t *testing.T) {
	newPair := func() (*Serializer, *Serializer) {
		author := New("Author", WithFields(F("name"), F("books", Ref("Book"))))
		book := New("Book", WithFields(F("title"), F("author", Ref("Author"))))
		return author, book
	}
	newGraph := func() map[string]interface{} {
		author := map[string]interface{}{"name": "Le Guin", "age": 88}
		book := map[string]interface{}{"title": "The Dispossessed", "pages": 387, "author": author}
		author["books"] = []interface{}{book}
		return author
	}
	expect := map[string]interface{}{
		"name":  "Le Guin",
		"books": []interface{}{map[string]interface{}{"title": "The Dispossessed"}},
	}

	var testCases = []struct {
		description string
		declare     func(registry *Registry, author, book *Serializer) error
	}{
		{
			description: "referenced serializer declared later",
			declare: func(registry *Registry, author, book *Serializer) error {
				return registry.Declare(author, book)
			},
		},
		{
			description: "referenced serializer declared earlier",
			declare: func(registry *Registry, author, book *Serializer) error {
				if err := registry.Declare(book); err != nil {
					return err
				}
				return registry.Declare(author)
			},
		},
	}
	for _, testCase := range testCases {
		registry := NewRegistry()
		author, book := newPair()
		if !assert.Nil(t, testCase.declare(registry, author, book), testCase.description) {
			continue
		}
		if !assert.Nil(t, registry.Link(), testCase.description) {
			continue
		}
		assert.True(t, author.Fields()[1].Nested.Serializer() == book, testCase.description)
		assert.True(t, book.Fields()[1].Nested.Serializer() == author, testCase.description)
		actual, err := author.Serialize(newGraph())
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, expect, actual, testCase.description)
	}
}

func TestRegistry_LinkReachable(t *testing.T) {
	registry := NewRegistry()
	tag := New("Tag", WithFields(F("label")))
	post := New("Post", WithFields(
		F("title"),
		F("meta", Inline(F("tags", Ref("Tag")))),
		F("author", Use(New("Author", WithFields(F("name"), F("tags", Ref("Tag")))))),
	))
	assert.Nil(t, registry.Declare(tag, post))
	assert.Nil(t, registry.Link())

	meta := post.Fields()[1].Nested
	assert.True(t, meta.fields[0].Nested.Serializer() == tag)
	author := post.Fields()[2].Nested.Serializer()
	assert.True(t, author.Fields()[1].Nested.Serializer() == tag)

	lookup, ok := registry.Lookup("Post")
	assert.True(t, ok)
	assert.True(t, lookup == post)
	_, ok = registry.Lookup("Author")
	assert.False(t, ok)
}

func TestRegistry_Errors(t *testing.T) {
	registry := NewRegistry()
	assert.Nil(t, registry.Declare(New("A", WithFields(F("b", Ref("B"))), WithRelatedRef("C"))))
	err := registry.Link()
	if assert.NotNil(t, err) {
		assert.True(t, errors.Is(err, ErrUnresolvedReference))
		assert.Contains(t, err.Error(), "A.b: B")
		assert.Contains(t, err.Error(), "A.related: C")
	}

	err = registry.Declare(New("A"))
	if assert.NotNil(t, err) {
		assert.True(t, errors.Is(err, ErrDuplicate))
	}
}

func TestRegistry_UnlinkedReference(t *testing.T) {
	related := New("Related", WithFields(F("id")))
	unlinked := New("Unlinked", WithFields(F("child", Ref("Missing"))), WithRelated(related))
	actual, err := unlinked.Serialize(map[string]interface{}{"child": map[string]interface{}{"id": 1, "name": "x"}})
	assert.Nil(t, err)
	assert.EqualValues(t, map[string]interface{}{"child": map[string]interface{}{"id": 1}}, actual)
}
