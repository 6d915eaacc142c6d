package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask_MultipartCarriesJSONPartAndFiles(t *testing.T) {
	type seen struct {
		taskJSON  string
		fileNames []string
		fileBody  string
	}
	var got seen

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		got.taskJSON = r.FormValue("task")
		for _, fh := range r.MultipartForm.File["files"] {
			got.fileNames = append(got.fileNames, fh.Filename)
			f, err := fh.Open()
			require.NoError(t, err)
			b, _ := io.ReadAll(f)
			_ = f.Close()
			got.fileBody = string(b)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":11,"title":"Ship it","status":"PENDING","priority":"HIGH"}`))
	}), "tok")

	task, err := c.CreateTask(context.Background(),
		TaskPayload{Title: "Ship it", Priority: "HIGH", ProjectID: 4},
		[]File{{Name: "spec.txt", Reader: strings.NewReader("attachment body")}},
	)
	require.NoError(t, err)
	assert.EqualValues(t, 11, task.ID)

	var payload TaskPayload
	require.NoError(t, json.Unmarshal([]byte(got.taskJSON), &payload))
	assert.Equal(t, "Ship it", payload.Title)
	assert.EqualValues(t, 4, payload.ProjectID)
	assert.Equal(t, []string{"spec.txt"}, got.fileNames)
	assert.Equal(t, "attachment body", got.fileBody)
}

func TestUpdateTask_UsesPutWithID(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":9,"title":"Renamed","status":"REVIEW","priority":"LOW"}`))
	}), "tok")

	_, err := c.UpdateTask(context.Background(), 9, TaskPayload{Title: "Renamed"}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/tasks/9", gotPath)
}

func TestListTasksByManager_PathIncludesManagerID(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"T","status":"DONE","priority":"LOW"}]`))
	}), "tok")

	tasks, err := c.ListTasksByManager(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "/tasks/manager/42", gotPath)
}
