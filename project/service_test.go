package project_test

import (
	"context"
	"testing"

	"github.com/komu10/keiri_service/keiri_core"
	"github.com/komu10/keiri_service/keiri_mock"
	"github.com/komu10/keiri_service/project"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestProjectCreate(t *testing.T) {
	var db gorm.DB

	keiri_mock.Suite(t, "test project create",
		keiri_mock.SetupListFunc{
			keiri_mock.MockSqliteDatabase(&db),
			keiri_mock.MigrateAll(&db),
		},
		func(t *testing.T) {
			ctx := context.Background()
			service := project.NewProjectService(&db)

			first, err := service.Create(ctx, &project.CreatePayload{
				Name:     "観光データ分析",
				Division: keiri_core.DataDivision,
				Owner:    keiri_core.OwnerTomo,
			})
			assert.Nil(t, err)
			assert.Equal(t, uint(1), first.SeqNo)
			assert.Equal(t, keiri_core.ProjectOrdered, first.Status, "ordered is the default status")

			second, err := service.Create(ctx, &project.CreatePayload{
				Name:     "プロモ動画",
				Division: keiri_core.YoutubeDivision,
				Owner:    keiri_core.OwnerTomo,
				Status:   keiri_core.ProjectActive,
			})
			assert.Nil(t, err)
			assert.Equal(t, uint(2), second.SeqNo, "sequence numbers continue")
			assert.Equal(t, "PJ-002", second.SeqLabel())

			t.Run("nameless project rejected", func(t *testing.T) {
				_, err := service.Create(ctx, &project.CreatePayload{})
				assert.NotNil(t, err)
			})
		},
	)
}

func TestProjectList(t *testing.T) {
	var db gorm.DB

	keiri_mock.Suite(t, "test project list",
		keiri_mock.SetupListFunc{
			keiri_mock.MockSqliteDatabase(&db),
			keiri_mock.MigrateAll(&db),
			keiri_mock.PopulateProjects(&db, []*keiri_core.Project{
				{Name: "A", Division: keiri_core.DataDivision, Owner: keiri_core.OwnerTomo, Status: keiri_core.ProjectActive},
				{Name: "B", Division: keiri_core.YoutubeDivision, Owner: keiri_core.OwnerTomo, Status: keiri_core.ProjectCompleted},
				{Name: "C", Division: keiri_core.DataDivision, Owner: keiri_core.OwnerToshiki, Status: keiri_core.ProjectActive},
			}),
		},
		func(t *testing.T) {
			ctx := context.Background()
			service := project.NewProjectService(&db)

			all, err := service.List(ctx, nil)
			assert.Nil(t, err)
			assert.Len(t, all, 3)
			assert.Equal(t, "A", all[0].Name, "seq_no order")

			byDivision, err := service.List(ctx, &project.ListFilter{Division: keiri_core.DataDivision})
			assert.Nil(t, err)
			assert.Len(t, byDivision, 2)

			byStatus, err := service.List(ctx, &project.ListFilter{Status: keiri_core.ProjectCompleted})
			assert.Nil(t, err)
			assert.Len(t, byStatus, 1)

			byOwner, err := service.List(ctx, &project.ListFilter{Owner: keiri_core.OwnerToshiki})
			assert.Nil(t, err)
			assert.Len(t, byOwner, 1)
		},
	)
}

func TestProjectDelete(t *testing.T) {
	var db gorm.DB

	keiri_mock.Suite(t, "test project delete",
		keiri_mock.SetupListFunc{
			keiri_mock.MockSqliteDatabase(&db),
			keiri_mock.MigrateAll(&db),
			keiri_mock.PopulateProjects(&db, []*keiri_core.Project{
				{Name: "A", Division: keiri_core.DataDivision},
			}),
			keiri_mock.PopulateTransactions(&db, []*keiri_core.Transaction{
				{TxType: keiri_core.ExpenseTx, Date: "2025-01-01", Amount: 100, Kamoku: keiri_core.MiscKamoku, ProjectID: 1},
			}),
		},
		func(t *testing.T) {
			ctx := context.Background()
			service := project.NewProjectService(&db)

			assert.Nil(t, service.Delete(ctx, 1))
			assert.ErrorIs(t, service.Delete(ctx, 1), project.ErrProjectNotFound)

			t.Run("linked transactions keep their reference", func(t *testing.T) {
				var tx keiri_core.Transaction
				assert.Nil(t, db.First(&tx).Error)
				assert.Equal(t, uint(1), tx.ProjectID)
			})
		},
	)
}
