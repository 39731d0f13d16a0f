package artparse_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/artparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtwork_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid artwork", func(t *testing.T) {
		t.Parallel()

		a := &artparse.Artwork{Name: "Starry Night", Link: "https://google.com/search?q=art"}

		assert.NoError(t, a.Validate())
	})

	t.Run("requires name", func(t *testing.T) {
		t.Parallel()

		a := &artparse.Artwork{Link: "https://google.com/search?q=art"}

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, artparse.EINVALID, artparse.ErrorCode(err))
	})

	t.Run("requires link", func(t *testing.T) {
		t.Parallel()

		a := &artparse.Artwork{Name: "Starry Night"}

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, artparse.EINVALID, artparse.ErrorCode(err))
	})
}

func TestResult_JSON(t *testing.T) {
	t.Parallel()

	t.Run("omits extensions and storage fields", func(t *testing.T) {
		t.Parallel()

		result := &artparse.Result{
			Artworks: []*artparse.Artwork{{
				Name:     "Pietà",
				Link:     "https://google.com/a",
				Image:    "img.png",
				ID:       "abc",
				Source:   "page",
				Position: 3,
			}},
			Rejected: 2,
		}

		b, err := json.Marshal(result)

		require.NoError(t, err)
		assert.JSONEq(t, `{"artworks":[{"name":"Pietà","link":"https://google.com/a","image":"img.png"}]}`, string(b))
	})

	t.Run("keeps extensions when present", func(t *testing.T) {
		t.Parallel()

		result := &artparse.Result{
			Artworks: []*artparse.Artwork{{
				Name:       "Starry Night",
				Link:       "https://google.com/a",
				Image:      "img.png",
				Extensions: []string{"1889"},
			}},
		}

		b, err := json.Marshal(result)

		require.NoError(t, err)
		assert.Contains(t, string(b), `"extensions":["1889"]`)
	})

	t.Run("empty result serializes artworks as empty list", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(&artparse.Result{Artworks: []*artparse.Artwork{}})

		require.NoError(t, err)
		assert.JSONEq(t, `{"artworks":[]}`, string(b))
	})
}
