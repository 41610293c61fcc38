package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"contactbook/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockAddressRepo(t *testing.T) (*AddressRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewAddressRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestAddressRepository_Create(t *testing.T) {
	repo, mock, cleanup := newMockAddressRepo(t)
	defer cleanup()

	a := models.Address{
		ContactID:  3,
		Street:     strPtr("Jalan Sudirman"),
		Country:    "Indonesia",
		PostalCode: "12190",
	}
	mock.ExpectExec(regexp.QuoteMeta(insertAddressSQL)).
		WithArgs(int64(3), strPtr("Jalan Sudirman"), nil, nil, "Indonesia", "12190").
		WillReturnResult(sqlmock.NewResult(11, 1))

	created, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("unexpected id: want 11, got %d", created.ID)
	}
	if created.ContactID != 3 {
		t.Fatalf("unexpected contact id: want 3, got %d", created.ContactID)
	}
}

func TestAddressRepository_Create_ExecError(t *testing.T) {
	repo, mock, cleanup := newMockAddressRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertAddressSQL)).
		WithArgs(int64(3), nil, nil, nil, "Indonesia", "12190").
		WillReturnError(errors.New("db exec failed"))

	_, err := repo.Create(context.Background(), models.Address{
		ContactID: 3, Country: "Indonesia", PostalCode: "12190",
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !containsStr(err.Error(), "insert address") {
		t.Fatalf("expected wrapped insert error, got %q", err.Error())
	}
}

func TestAddressRepository_GetByID(t *testing.T) {
	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantNil    bool
		wantErr    bool
	}{
		{
			name: "found",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "contact_id", "street", "city", "province", "country", "postal_code"}).
					AddRow(11, 3, nil, "Jakarta", nil, "Indonesia", "12190")
				m.ExpectQuery(regexp.QuoteMeta(selectAddressSQL)).
					WithArgs(int64(11), int64(3)).
					WillReturnRows(rows)
			},
		},
		{
			// An existing address id under a different contact must not be reachable.
			name: "wrong contact scope",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectAddressSQL)).
					WithArgs(int64(11), int64(3)).
					WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "query error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectAddressSQL)).
					WithArgs(int64(11), int64(3)).
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockAddressRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			a, err := repo.GetByID(context.Background(), 11, 3)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if a != nil {
					t.Fatalf("expected nil address, got %+v", a)
				}
				return
			}
			if a == nil {
				t.Fatalf("expected address, got nil")
			}
			if a.ID != 11 || a.Country != "Indonesia" || a.PostalCode != "12190" {
				t.Fatalf("unexpected address: %+v", a)
			}
			if a.City == nil || *a.City != "Jakarta" {
				t.Fatalf("unexpected city: %v", a.City)
			}
			if a.Street != nil || a.Province != nil {
				t.Fatalf("expected nil street/province, got %+v", a)
			}
		})
	}
}

func TestAddressRepository_CountByID(t *testing.T) {
	repo, mock, cleanup := newMockAddressRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(countAddressSQL)).
		WithArgs(int64(11), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	n, err := repo.CountByID(context.Background(), 11, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("unexpected count: want 0, got %d", n)
	}
}

func TestAddressRepository_Update(t *testing.T) {
	repo, mock, cleanup := newMockAddressRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(updateAddressSQL)).
		WithArgs(nil, strPtr("Bandung"), nil, "Indonesia", "40111", int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), models.Address{
		ID: 11, ContactID: 3, City: strPtr("Bandung"), Country: "Indonesia", PostalCode: "40111",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddressRepository_Delete(t *testing.T) {
	t.Run("owned row removed", func(t *testing.T) {
		repo, mock, cleanup := newMockAddressRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteAddressSQL)).
			WithArgs(int64(11), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.Delete(context.Background(), 11, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Fatalf("unexpected rows affected: want 1, got %d", n)
		}
	})

	t.Run("wrong contact removes nothing", func(t *testing.T) {
		repo, mock, cleanup := newMockAddressRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteAddressSQL)).
			WithArgs(int64(11), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.Delete(context.Background(), 11, 99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Fatalf("unexpected rows affected: want 0, got %d", n)
		}
	})
}

func TestAddressRepository_ListByContact(t *testing.T) {
	repo, mock, cleanup := newMockAddressRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "contact_id", "street", "city", "province", "country", "postal_code"}).
		AddRow(11, 3, nil, nil, nil, "Indonesia", "12190").
		AddRow(12, 3, "Jalan Merdeka", "Bandung", "Jawa Barat", "Indonesia", "40111")
	mock.ExpectQuery(regexp.QuoteMeta(listAddressesSQL)).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	out, err := repo.ListByContact(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("unexpected result count: want 2, got %d", len(out))
	}
	if out[0].ID != 11 || out[1].ID != 12 {
		t.Fatalf("unexpected order: %+v", out)
	}
	if out[1].Street == nil || *out[1].Street != "Jalan Merdeka" {
		t.Fatalf("unexpected street: %v", out[1].Street)
	}
}
