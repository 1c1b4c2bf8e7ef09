//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dayboard/dayboard-server/internal/model"
	repo "github.com/dayboard/dayboard-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "dayboard_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/dayboard_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(email string) model.User {
	return model.User{
		ID:            uuid.New(),
		Email:         email,
		Name:          "Test User",
		AuthSecret:    "authcomp",
		RefreshSecret: "refreshcomp",
	}
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)

		saved, err := ur.Create(ctx, newUser("user@example.com"))
		require.NoError(t, err)
		require.Equal(t, "user@example.com", saved.Email)
		require.False(t, saved.CreatedAt.IsZero())

		_, err = ur.Create(ctx, newUser("user@example.com"))
		require.ErrorIs(t, err, model.ErrConflict)

		byEmail, err := ur.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		require.Equal(t, saved.ID, byEmail.ID)

		renamed, err := ur.UpdateName(ctx, "user@example.com", "Renamed")
		require.NoError(t, err)
		require.Equal(t, "Renamed", renamed.Name)

		require.NoError(t, ur.UpdateSecrets(ctx, "user@example.com", "newauth", "newrefresh"))
		rotated, err := ur.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		require.Equal(t, "newauth", rotated.AuthSecret)
		require.Equal(t, "newrefresh", rotated.RefreshSecret)

		now := time.Now()
		require.NoError(t, ur.UpdateLastLogin(ctx, "user@example.com", now))
		logged, err := ur.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		require.NotNil(t, logged.LastLoginAt)

		require.NoError(t, ur.Delete(ctx, "user@example.com"))
		_, err = ur.GetByEmail(ctx, "user@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)

		require.ErrorIs(t, ur.Delete(ctx, "user@example.com"), model.ErrNotFound)
		require.ErrorIs(t, ur.UpdateSecrets(ctx, "ghost@example.com", "a", "b"), model.ErrNotFound)
	})

	t.Run("verification_repository", func(t *testing.T) {
		vr := repo.NewVerificationRepository(conn)
		now := time.Now()

		req := model.VerificationRequest{
			Email:     "pending@example.com",
			Kind:      model.KindSignup,
			CodeHash:  "hash",
			CreatedAt: now,
			ExpiresAt: now.Add(model.VerificationWindow),
		}
		require.NoError(t, vr.Create(ctx, req))

		// A second request while one is pending is rejected.
		require.ErrorIs(t, vr.Create(ctx, req), model.ErrConflict)

		got, err := vr.GetByEmail(ctx, "pending@example.com")
		require.NoError(t, err)
		require.Equal(t, model.KindSignup, got.Kind)
		require.Equal(t, "hash", got.CodeHash)

		require.NoError(t, vr.Delete(ctx, "pending@example.com"))
		_, err = vr.GetByEmail(ctx, "pending@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)

		// Deleting again is a no-op.
		require.NoError(t, vr.Delete(ctx, "pending@example.com"))
	})

	t.Run("verification_repository_expiry", func(t *testing.T) {
		vr := repo.NewVerificationRepository(conn)
		now := time.Now()

		expired := model.VerificationRequest{
			Email:     "expired@example.com",
			Kind:      model.KindLogin,
			CodeHash:  "hash",
			CreatedAt: now.Add(-10 * time.Minute),
			ExpiresAt: now.Add(-5 * time.Minute),
		}
		require.NoError(t, vr.Create(ctx, expired))

		// An expired request is invisible and lazily removed.
		_, err := vr.GetByEmail(ctx, "expired@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)

		// And it no longer blocks a fresh request.
		fresh := expired
		fresh.CreatedAt = now
		fresh.ExpiresAt = now.Add(model.VerificationWindow)
		require.NoError(t, vr.Create(ctx, fresh))
		require.NoError(t, vr.Delete(ctx, "expired@example.com"))
	})

	t.Run("task_repository", func(t *testing.T) {
		tr := repo.NewTaskRepository(conn)
		owner := "tasks@example.com"

		first := model.Task{ID: uuid.New(), Content: "first task"}
		second := model.Task{ID: uuid.New(), Content: "second task"}
		require.NoError(t, tr.Create(ctx, owner, first))
		require.NoError(t, tr.Create(ctx, owner, second))

		tasks, err := tr.ListByOwner(ctx, owner)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		require.Equal(t, "first task", tasks[0].Content)

		require.NoError(t, tr.UpdateContent(ctx, owner, first.ID, "rewritten"))
		require.NoError(t, tr.UpdateCompletion(ctx, owner, first.ID, true))

		tasks, err = tr.ListByOwner(ctx, owner)
		require.NoError(t, err)
		require.Equal(t, "rewritten", tasks[0].Content)
		require.True(t, tasks[0].Completed)

		// Another owner sees nothing and can not touch these tasks.
		other, err := tr.ListByOwner(ctx, "other@example.com")
		require.NoError(t, err)
		require.Empty(t, other)
		require.ErrorIs(t, tr.Delete(ctx, "other@example.com", first.ID), model.ErrNotFound)

		require.NoError(t, tr.Delete(ctx, owner, first.ID))
		require.NoError(t, tr.Delete(ctx, owner, second.ID))
	})

	t.Run("feed_repository", func(t *testing.T) {
		fr := repo.NewFeedRepository(conn)

		_, err := fr.Get(ctx)
		require.ErrorIs(t, err, model.ErrNotFound)

		saved, err := fr.Save(ctx, model.ImageOfTheDay{URL: "https://img/a.jpg", Title: "A"})
		require.NoError(t, err)
		require.False(t, saved.UpdatedAt.IsZero())

		replaced, err := fr.Replace(ctx, "https://img/a.jpg", model.ImageOfTheDay{URL: "https://img/b.jpg", Title: "B"})
		require.NoError(t, err)
		require.Equal(t, "https://img/b.jpg", replaced.URL)

		count, err := fr.Count(ctx)
		require.NoError(t, err)
		require.Zero(t, count)

		q1, err := fr.Add(ctx, model.Quote{Index: 0, Quote: "one", Author: "a"})
		require.NoError(t, err)
		_, err = fr.Add(ctx, model.Quote{Index: 1, Quote: "two", Author: "b", Recommender: "user@example.com"})
		require.NoError(t, err)

		count, err = fr.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, count)

		_, err = fr.GetQuoteOfTheDay(ctx)
		require.ErrorIs(t, err, model.ErrNotFound)

		current, err := fr.SetQuoteOfTheDay(ctx, q1.Index)
		require.NoError(t, err)
		require.True(t, current.Current)

		rotated, err := fr.SetQuoteOfTheDay(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "two", rotated.Quote)

		current, err = fr.GetQuoteOfTheDay(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, current.Index)
	})
}
