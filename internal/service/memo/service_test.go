package memo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/department"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/memo"
	"github.com/arcadia-hr/hr-portal-go/internal/repository/memory"
)

type memoTestEnv struct {
	svc            memo.MemoService
	author         employee.Employee
	engineering    department.Department
	departmentRepo department.DepartmentRepository
}

func newMemoTestEnv(t *testing.T) memoTestEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	memoRepo := memory.NewMemoRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	departmentRepo := memory.NewDepartmentRepository(store)

	author, err := employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: "5001-0001",
		FullName:     "HR Author",
		Email:        "hr@example.com",
		Role:         employee.RoleAdmin,
		Status:       employee.StatusActive,
		HireDate:     time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	engineering, err := departmentRepo.Create(ctx, department.Department{Name: "Engineering"})
	require.NoError(t, err)

	return memoTestEnv{
		svc:            NewMemoService(memoRepo, employeeRepo, departmentRepo),
		author:         author,
		engineering:    engineering,
		departmentRepo: departmentRepo,
	}
}

func TestMemoService_Publish_OrganizationWide(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newMemoTestEnv(t)

	resp, err := env.svc.Publish(ctx, memo.PublishMemoRequest{
		AuthorID: env.author.ID,
		Title:    "Office closure",
		Body:     "Closed on Friday for maintenance.",
		Priority: string(memo.PriorityImportant),
		Audience: memo.AudienceAll,
	})

	require.NoError(t, err)
	assert.Equal(t, memo.AudienceAll, resp.Audience)
	assert.NotEmpty(t, resp.PublishedAt)
}

func TestMemoService_Publish_UnknownDepartmentAudience(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newMemoTestEnv(t)

	_, err := env.svc.Publish(ctx, memo.PublishMemoRequest{
		AuthorID: env.author.ID,
		Title:    "Team update",
		Body:     "For a department that does not exist.",
		Priority: string(memo.PriorityNormal),
		Audience: "missing-department",
	})

	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestMemoService_List_DepartmentSeesOwnAndGlobal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newMemoTestEnv(t)

	sales, err := env.departmentRepo.Create(ctx, department.Department{Name: "Sales"})
	require.NoError(t, err)

	for _, m := range []memo.PublishMemoRequest{
		{AuthorID: env.author.ID, Title: "Global", Body: "everyone", Priority: string(memo.PriorityNormal), Audience: memo.AudienceAll},
		{AuthorID: env.author.ID, Title: "Eng only", Body: "eng", Priority: string(memo.PriorityUrgent), Audience: env.engineering.ID},
		{AuthorID: env.author.ID, Title: "Sales only", Body: "sales", Priority: string(memo.PriorityNormal), Audience: sales.ID},
	} {
		_, err := env.svc.Publish(ctx, m)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	visible, err := env.svc.List(ctx, memo.MemoFilter{DepartmentID: &env.engineering.ID})
	require.NoError(t, err)
	require.Len(t, visible, 2)

	// Newest publication first.
	assert.Equal(t, "Eng only", visible[0].Title)
	assert.Equal(t, "Global", visible[1].Title)
}

func TestMemoService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newMemoTestEnv(t)

	created, err := env.svc.Publish(ctx, memo.PublishMemoRequest{
		AuthorID: env.author.ID,
		Title:    "Obsolete",
		Body:     "to be removed",
		Priority: string(memo.PriorityNormal),
		Audience: memo.AudienceAll,
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(ctx, created.ID))

	_, err = env.svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, memo.ErrMemoNotFound)
}
