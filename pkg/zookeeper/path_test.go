package zookeeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		errorExpected bool
	}{
		{
			name:          "empty string",
			path:          "",
			errorExpected: true,
		},
		{
			name:          "not starting at root",
			path:          "node/other/one",
			errorExpected: true,
		},
		{
			name:          "not ending with node name",
			path:          "/a/b/",
			errorExpected: true,
		},
		{
			name:          "root",
			path:          "/",
			errorExpected: false,
		},
		{
			name:          "no parents",
			path:          "/x",
			errorExpected: false,
		},
		{
			name:          "multiple parents",
			path:          "/x/y/z",
			errorExpected: false,
		},
		{
			name:          "empty name between path separator",
			path:          "//y/z",
			errorExpected: true,
		},
		{
			name:          "relative segment",
			path:          "/x/../y",
			errorExpected: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidatePath(test.path)
			if test.errorExpected {
				assert.ErrorIs(t, err, ErrInvalidPath)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPathHelpers(t *testing.T) {
	tests := []struct {
		path   string
		parent string
		base   string
	}{
		{path: "/", parent: "/", base: ""},
		{path: "/config", parent: "/", base: "config"},
		{path: "/config/db/url", parent: "/config/db", base: "url"},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			assert.Equal(t, test.parent, Parent(test.path))
			assert.Equal(t, test.base, Base(test.path))
			if test.path != "/" {
				assert.Equal(t, test.path, Join(Parent(test.path), Base(test.path)))
			}
		})
	}
}

func TestEventMask_Matches(t *testing.T) {
	assert.True(t, MaskDataChanged.Matches(EventNodeDataChanged))
	assert.False(t, MaskDataChanged.Matches(EventChildAdded))
	assert.True(t, MaskChildAdded.Matches(EventNodeChildrenChanged))
	assert.False(t, MaskChildAdded.Matches(EventChildRemoved))
	assert.True(t, MaskAll.Matches(EventChildUpdated))
	assert.True(t, EventMask(0).Matches(EventSession))
	assert.True(t, EventMask(0).Matches(EventWatchBroken))
}
