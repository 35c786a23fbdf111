package schedule_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/2beens/eragrok/internal/dates"
	"github.com/2beens/eragrok/internal/program"
	"github.com/2beens/eragrok/internal/schedule"
	"github.com/2beens/eragrok/internal/techniques"
	"github.com/2beens/eragrok/internal/userdir"
	"github.com/2beens/eragrok/pkg"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCatalog = techniques.MustNewCatalog([]techniques.Technique{
	{ID: "bench_press", Name: "Bench Press", Category: techniques.CategoryMixed, Repetitions: "8-10", Load: "70%"},
	{ID: "squat", Name: "Squat", Category: techniques.CategoryMyofibrillar, Repetitions: "5", Load: "80%"},
})

func newTestRouter(store *MockscheduleStore, drafts *MockdraftGetter) *mux.Router {
	r := mux.NewRouter()
	schedule.NewHandler(store, drafts, testCatalog).SetupRoutes(r)
	return r
}

func serve(t *testing.T, r *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHandler_HandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockscheduleStore(ctrl)
	r := newTestRouter(store, NewMockdraftGetter(ctrl))

	gomock.InOrder(
		store.EXPECT().Range(gomock.Any(), "jean", time.Time{}, time.Time{}, false).
			Return([]schedule.Entry{{ID: "1", Date: "05/03/2025", Line: "a"}}, nil),
		store.EXPECT().Range(gomock.Any(), "jean", day(2025, 3, 1), day(2025, 3, 31), true).
			Return([]schedule.Entry{}, nil),
		store.EXPECT().Range(gomock.Any(), "jean", day(2025, 3, 3), day(2025, 3, 9), false).
			Return([]schedule.Entry{}, nil),
		store.EXPECT().Range(gomock.Any(), "jean", day(2025, 3, 5), day(2025, 3, 5), false).
			Return([]schedule.Entry{}, nil),
		store.EXPECT().Range(gomock.Any(), "jean", day(2025, 3, 1), day(2025, 3, 31), false).
			Return([]schedule.Entry{}, nil),
	)

	rr := serve(t, r, http.MethodGet, "/users/jean/schedule", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var entries []schedule.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Line)

	rr = serve(t, r, http.MethodGet, "/users/jean/schedule?from=2025-03-01&to=31/03/2025&undated=true", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = serve(t, r, http.MethodGet, "/users/jean/schedule?view=week&date=05/03/2025", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = serve(t, r, http.MethodGet, "/users/jean/schedule?view=day&date=2025-03-05", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = serve(t, r, http.MethodGet, "/users/jean/schedule?view=month&date=15/03/2025", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, r, http.MethodGet, "/users/jean/schedule?view=year&date=15/03/2025", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = serve(t, r, http.MethodGet, "/users/jean/schedule?view=week", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = serve(t, r, http.MethodGet, "/users/jean/schedule?from=hier", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleList_InvalidUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockscheduleStore(ctrl)
	store.EXPECT().Range(gomock.Any(), "..", gomock.Any(), gomock.Any(), false).
		Return(nil, fmt.Errorf("%w: %q", userdir.ErrInvalidUser, "..")).Times(1)

	req, err := http.NewRequest(http.MethodGet, "/users/x/schedule", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"user": ".."})
	rr := httptest.NewRecorder()
	schedule.NewHandler(store, NewMockdraftGetter(ctrl), testCatalog).HandleList(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockscheduleStore(ctrl)
	r := newTestRouter(store, NewMockdraftGetter(ctrl))

	store.EXPECT().
		Append(gomock.Any(), "jean", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, entry schedule.Entry) (schedule.Entry, error) {
			assert.Equal(t, "Bench Press [8-10] | 70% (bench_press)", entry.Line)
			assert.Equal(t, "MIXTE", entry.Type)
			entry.ID = "new-id"
			entry.Date = "05/03/2025"
			return entry, nil
		}).Times(1)
	store.EXPECT().
		Append(gomock.Any(), "jean", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, entry schedule.Entry) (schedule.Entry, error) {
			assert.Equal(t, "Tractions lestées", entry.Line)
			assert.Equal(t, []string{"Dos"}, entry.MuscleGroups)
			return entry, nil
		}).Times(1)

	rr := serve(t, r, http.MethodPost, "/users/jean/schedule", `{"techniqueId":"bench_press","date":"2025-03-05"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var added schedule.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.Equal(t, "new-id", added.ID)

	rr = serve(t, r, http.MethodPost, "/users/jean/schedule", `{"line":"Tractions lestées","muscleGroups":["Dos"]}`)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(t, r, http.MethodPost, "/users/jean/schedule", `{"techniqueId":"nope"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = serve(t, r, http.MethodPost, "/users/jean/schedule", `{"line":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = serve(t, r, http.MethodPost, "/users/jean/schedule", `{`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleAdd_StoreFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockscheduleStore(ctrl)
	r := newTestRouter(store, NewMockdraftGetter(ctrl))

	store.EXPECT().Append(gomock.Any(), "jean", gomock.Any()).
		Return(schedule.Entry{}, errors.New("read-only file system")).Times(1)

	rr := serve(t, r, http.MethodPost, "/users/jean/schedule", `{"line":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandler_HandleDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockscheduleStore(ctrl)
	r := newTestRouter(store, NewMockdraftGetter(ctrl))

	store.EXPECT().DeleteMatching(gomock.Any(), "jean", "05/03/2025", "a").Return(2, nil).Times(1)
	store.EXPECT().DeleteMatching(gomock.Any(), "jean", "", "b").Return(0, nil).Times(1)
	store.EXPECT().DeleteMatching(gomock.Any(), "jean", "99/99/2025", "c").
		Return(0, fmt.Errorf("%w: 99/99/2025", dates.ErrInvalidDate)).Times(1)
	store.EXPECT().DeleteMatching(gomock.Any(), "jean", "05/03/2025", "d").
		Return(0, fmt.Errorf("delete schedule entries: %w", pkg.ErrPartialCSV)).Times(1)

	rr := serve(t, r, http.MethodDelete, "/users/jean/schedule", `{"date":"05/03/2025","line":"a"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"removed":2}`, rr.Body.String())

	rr = serve(t, r, http.MethodDelete, "/users/jean/schedule", `{"line":"b"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"removed":0}`, rr.Body.String())

	rr = serve(t, r, http.MethodDelete, "/users/jean/schedule", `{"date":"99/99/2025","line":"c"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(t, r, http.MethodDelete, "/users/jean/schedule", `{"date":"05/03/2025","line":"d"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = serve(t, r, http.MethodDelete, "/users/jean/schedule", `nope`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleAssign(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockscheduleStore(ctrl)
	r := newTestRouter(store, NewMockdraftGetter(ctrl))

	store.EXPECT().ReassignDate(gomock.Any(), "jean", "a", "12/03/2025").Return(true, nil).Times(1)
	store.EXPECT().ReassignDate(gomock.Any(), "jean", "b", "12/03/2025").Return(false, nil).Times(1)
	store.EXPECT().ReassignDate(gomock.Any(), "jean", "c", "demain").
		Return(false, dates.ErrInvalidDate).Times(1)

	rr := serve(t, r, http.MethodPost, "/users/jean/schedule/assign", `{"line":"a","date":"12/03/2025"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"updated":true}`, rr.Body.String())

	rr = serve(t, r, http.MethodPost, "/users/jean/schedule/assign", `{"line":"b","date":"12/03/2025"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(t, r, http.MethodPost, "/users/jean/schedule/assign", `{"line":"c","date":"demain"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleSaveProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockscheduleStore(ctrl)
	drafts := NewMockdraftGetter(ctrl)
	r := newTestRouter(store, drafts)

	lines := []string{"--- Semaine 1 ---", "Lundi : Squat [5] | 80% (squat)"}
	drafts.EXPECT().Get(gomock.Any(), "draft-1").Return(program.Draft{ID: "draft-1", Lines: lines}, true, nil).Times(1)
	drafts.EXPECT().Get(gomock.Any(), "gone").Return(program.Draft{}, false, nil).Times(1)
	drafts.EXPECT().Get(gomock.Any(), "broken").Return(program.Draft{}, false, errors.New("corrupt entry")).Times(1)
	store.EXPECT().
		AppendProgram(gomock.Any(), "jean", "10/03/2025", lines, []string{"Jambes"}, "Force", "semaine légère").
		Return(1, nil).Times(1)

	rr := serve(t, r, http.MethodPost, "/users/jean/schedule/program",
		`{"draftId":"draft-1","date":"10/03/2025","groups":["Jambes"],"program":"Force","note":"semaine légère"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"written":1}`, rr.Body.String())

	rr = serve(t, r, http.MethodPost, "/users/jean/schedule/program", `{"draftId":"gone","date":"10/03/2025"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(t, r, http.MethodPost, "/users/jean/schedule/program", `{"draftId":"broken","date":"10/03/2025"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
