package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradeaskill/internal/delivery/http/dto"
	"tradeaskill/internal/delivery/http/middleware"
	"tradeaskill/internal/domain/skill"
	"tradeaskill/internal/domain/user"
	"tradeaskill/internal/infrastructure/kv"
	"tradeaskill/internal/render"
	"tradeaskill/internal/search"
	"tradeaskill/internal/usecase/catalog"
	"tradeaskill/internal/usecase/profile"
	"tradeaskill/internal/usecase/signup"
	"tradeaskill/internal/validation"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "test-session"

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.CtxSessionIDKey, testSession)
		return c.Next()
	})
	register(app.Group("/api/v1"))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

type stubBrowser struct {
	got  catalog.Query
	page catalog.Page
	err  error
}

func (s *stubBrowser) Browse(_ context.Context, q catalog.Query) (catalog.Page, error) {
	s.got = q
	return s.page, s.err
}

func TestSkillHandler_ListParsesControls(t *testing.T) {
	b := &stubBrowser{page: catalog.Page{Sort: "rating-desc", Total: 12, Shown: 0, Output: render.Render(nil, render.ViewList)}}
	app := newApp(NewSkillHandler(b).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/api/v1/skills?q=guitar&category=music&level=beginner&sort=rating-desc&view=list", "")
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "guitar", b.got.Filter.Term)
	assert.Equal(t, "music", b.got.Filter.Category)
	assert.Equal(t, "beginner", b.got.Filter.Level)
	assert.Equal(t, search.SortKey{Field: search.SortByRating, Direction: search.Desc}, b.got.Filter.Sort)
	assert.Equal(t, render.ViewList, b.got.View)

	var res dto.SkillsResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.Output.Empty)
	assert.Equal(t, render.NoResultsMessage, res.Output.Message)
	assert.Equal(t, "list", res.Query.View)
}

func TestSkillHandler_UpstreamFailureIsVisible(t *testing.T) {
	b := &stubBrowser{err: errors.Join(catalog.ErrUpstream, errors.New("connection refused"))}
	app := newApp(NewSkillHandler(b).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/api/v1/skills", "")
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, msgSkillsUnavailable, env.Message)
}

func TestSkillHandler_RealPipeline(t *testing.T) {
	src := catalog.NewSource(fetcherFunc(func(context.Context) ([]skill.Record, error) {
		return nil, errors.New("down")
	}), nil, "static", nil)
	app := newApp(NewSkillHandler(catalog.NewBrowser(src, search.NewEngine("en"))).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/api/v1/skills?category=music&sort=bogus", "")
	require.Equal(t, http.StatusOK, status)

	var res dto.SkillsResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.Fallback)
	assert.Equal(t, "title-asc", res.Query.Sort)
	assert.Equal(t, 2, res.Shown)
	assert.Equal(t, "skills-grid", res.Output.Layout.ContainerClass)
}

type fetcherFunc func(context.Context) ([]skill.Record, error)

func (f fetcherFunc) FetchSkills(ctx context.Context) ([]skill.Record, error) { return f(ctx) }

func newProfileApp(t *testing.T) (*fiber.App, *profile.Store) {
	t.Helper()
	store := profile.NewStore(kv.NewMemory(), nil, nil)
	h := NewProfileHandler(store)
	h.today = func() string { return "2026-10-19" }
	return newApp(h.RegisterRoutes), store
}

func TestProfileHandler_GuestView(t *testing.T) {
	app, _ := newProfileApp(t)

	status, env := do(t, app, http.MethodGet, "/api/v1/profile", "")
	require.Equal(t, http.StatusOK, status)

	var res dto.ProfileResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.Profile.IsGuest())
	assert.Equal(t, "Guest User", res.View.FullName)
	assert.Equal(t, "GU", res.View.Initials)
	assert.Equal(t, "2026-10-19", res.View.Stats.DateJoined)
	assert.Equal(t, "Sign In", res.View.AuthAction)
}

func TestProfileHandler_EditAndSkills(t *testing.T) {
	app, store := newProfileApp(t)
	ctx := context.Background()

	status, env := do(t, app, http.MethodPut, "/api/v1/profile", `{"firstName":"Ada","lastName":" ","bio":"Math"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Profile updated successfully!", env.Message)

	status, _ = do(t, app, http.MethodPost, "/api/v1/profile/skills/teach", `{"skill":"  Chess "}`)
	require.Equal(t, http.StatusOK, status)
	status, _ = do(t, app, http.MethodPost, "/api/v1/profile/skills/teach", `{"skill":"Go"}`)
	require.Equal(t, http.StatusOK, status)

	status, env = do(t, app, http.MethodDelete, "/api/v1/profile/skills/teach?skill=Chess", "")
	require.Equal(t, http.StatusOK, status)

	var res dto.ProfileResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, []render.SkillTag{{List: "teach", Label: "Go"}}, res.View.TeachSkills)

	p, err := store.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, user.GuestLastName, p.LastName)
	assert.Equal(t, "Math", p.Bio)
	assert.Equal(t, []string{"Go"}, p.SkillsToTeach)
}

func TestProfileHandler_UnknownList(t *testing.T) {
	app, _ := newProfileApp(t)
	status, _ := do(t, app, http.MethodPost, "/api/v1/profile/skills/juggle", `{"skill":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProfileHandler_SignOut(t *testing.T) {
	app, store := newProfileApp(t)
	ctx := context.Background()
	require.NoError(t, store.SignIn(ctx, testSession, user.Profile{ID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}))

	_, env := do(t, app, http.MethodGet, "/api/v1/profile", "")
	var before dto.ProfileResponse
	require.NoError(t, json.Unmarshal(env.Data, &before))
	assert.Equal(t, "Sign Out", before.View.AuthAction)

	status, env := do(t, app, http.MethodPost, "/api/v1/auth/signout", "")
	require.Equal(t, http.StatusOK, status)
	var after dto.ProfileResponse
	require.NoError(t, json.Unmarshal(env.Data, &after))
	assert.True(t, after.Profile.IsGuest())
	assert.Equal(t, "Sign In", after.View.AuthAction)
}

type stubUsers struct {
	createErr error
}

func (s stubUsers) FetchUsers(context.Context) ([]user.Profile, error) { return nil, nil }
func (s stubUsers) CreateUser(context.Context, user.NewUser) error   { return s.createErr }

func newSignupApp(t *testing.T, users signup.UsersAPI) *fiber.App {
	t.Helper()
	v, err := validation.New()
	require.NoError(t, err)
	svc := signup.NewService(v, users, profile.NewStore(kv.NewMemory(), nil, nil), signup.Options{BcryptCost: 4}, nil)
	return newApp(NewSignupHandler(svc).RegisterRoutes)
}

const validSignup = `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"longenough","confirmPassword":"longenough","skillsToTeach":"Guitar","skillsToLearn":"Go","terms":true}`

func TestSignupHandler_Register(t *testing.T) {
	app := newSignupApp(t, stubUsers{})

	status, env := do(t, app, http.MethodPost, "/api/v1/signup", validSignup)
	require.Equal(t, http.StatusCreated, status)

	var view render.ProfileView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Jane Doe", view.FullName)
	assert.True(t, view.LoggedIn)
}

func TestSignupHandler_InvalidForm(t *testing.T) {
	app := newSignupApp(t, stubUsers{})

	status, env := do(t, app, http.MethodPost, "/api/v1/signup", `{"firstName":"J","email":"nope","terms":false}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)

	var report validation.Report
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.False(t, report.Valid())
	assert.False(t, report["firstName"].Valid)
	assert.False(t, report["email"].Valid)
	assert.True(t, report["bio"].Valid)
}

func TestSignupHandler_UpstreamFailure(t *testing.T) {
	app := newSignupApp(t, stubUsers{createErr: errors.New("503")})

	status, env := do(t, app, http.MethodPost, "/api/v1/signup", validSignup)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "Failed to create account. Please try again.", env.Message)
}

func TestSignupHandler_ValidateField(t *testing.T) {
	app := newSignupApp(t, stubUsers{})

	status, env := do(t, app, http.MethodPost, "/api/v1/signup/validate?field=email", `{"email":"jane@example"}`)
	require.Equal(t, http.StatusOK, status)
	var st validation.FieldStatus
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.False(t, st.Valid)
	assert.NotEmpty(t, st.Message)

	status, _ = do(t, app, http.MethodPost, "/api/v1/signup/validate?field=nickname", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
}
