package services

import (
	"testing"
	"time"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/apperrors"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/dtos"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowDecrementsInstances(t *testing.T) {
	db := newTestDB(t)
	bookService := NewBookService(db)
	service := NewBorrowedBookService(db, bookService)

	book := createTestBook(t, db, "ISBN-1", 2)
	reader := createTestReader(t, db, "reader@example.com")

	newId, err := service.Borrow(book.Id, reader.Id)
	require.NoError(t, err)
	assert.Greater(t, newId, 0)

	updated, err := bookService.GetBookByID(book.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Instances)

	borrowedBook, err := service.GetBorrowedBookByID(newId)
	require.NoError(t, err)
	assert.Equal(t, book.Id, borrowedBook.BookId)
	assert.Equal(t, reader.Id, borrowedBook.ReaderId)
	assert.Nil(t, borrowedBook.ReturnAt)
}

func TestBorrowWithoutInstancesFails(t *testing.T) {
	db := newTestDB(t)
	bookService := NewBookService(db)
	service := NewBorrowedBookService(db, bookService)

	book := createTestBook(t, db, "ISBN-1", 1)
	r1 := createTestReader(t, db, "r1@example.com")
	r2 := createTestReader(t, db, "r2@example.com")

	_, err := service.Borrow(book.Id, r1.Id)
	require.NoError(t, err)

	_, err = service.Borrow(book.Id, r2.Id)
	assert.ErrorIs(t, err, apperrors.ErrUnableToBorrow)

	// The failed attempt must not change the count or create a loan
	updated, err := bookService.GetBookByID(book.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Instances)

	loans, err := service.GetAllByReaderID(r2.Id)
	require.NoError(t, err)
	assert.Empty(t, loans)
}

func TestBorrowSameBookTwiceFails(t *testing.T) {
	db := newTestDB(t)
	service := NewBorrowedBookService(db, NewBookService(db))

	book := createTestBook(t, db, "ISBN-1", 5)
	reader := createTestReader(t, db, "reader@example.com")

	_, err := service.Borrow(book.Id, reader.Id)
	require.NoError(t, err)

	_, err = service.Borrow(book.Id, reader.Id)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyBorrowed)

	var book2 models.BookModel
	require.NoError(t, db.First(&book2, book.Id).Error)
	assert.Equal(t, 4, book2.Instances)
}

func TestBorrowLimitPerReader(t *testing.T) {
	db := newTestDB(t)
	service := NewBorrowedBookService(db, NewBookService(db))

	reader := createTestReader(t, db, "reader@example.com")
	books := make([]*models.BookModel, 0, 4)
	for _, isbn := range []string{"A", "B", "C", "D"} {
		books = append(books, createTestBook(t, db, isbn, 1))
	}

	for i := 0; i < 3; i++ {
		_, err := service.Borrow(books[i].Id, reader.Id)
		require.NoError(t, err)
	}

	_, err := service.Borrow(books[3].Id, reader.Id)
	assert.ErrorIs(t, err, apperrors.ErrTooManyLoans)

	// No loan record and no decrement for the rejected borrow
	var book4 models.BookModel
	require.NoError(t, db.First(&book4, books[3].Id).Error)
	assert.Equal(t, 1, book4.Instances)

	loans, err := service.GetAllByReaderID(reader.Id)
	require.NoError(t, err)
	assert.Len(t, loans, 3)
}

func TestBorrowLimitIgnoresClosedLoans(t *testing.T) {
	db := newTestDB(t)
	service := NewBorrowedBookService(db, NewBookService(db))

	reader := createTestReader(t, db, "reader@example.com")
	books := make([]*models.BookModel, 0, 4)
	for _, isbn := range []string{"A", "B", "C", "D"} {
		books = append(books, createTestBook(t, db, isbn, 1))
	}

	for i := 0; i < 3; i++ {
		_, err := service.Borrow(books[i].Id, reader.Id)
		require.NoError(t, err)
	}

	// Returning one book frees a slot
	require.NoError(t, service.Return(books[0].Id, reader.Id))

	_, err := service.Borrow(books[3].Id, reader.Id)
	assert.NoError(t, err)
}

func TestBorrowThenReturnRestoresInstances(t *testing.T) {
	db := newTestDB(t)
	bookService := NewBookService(db)
	service := NewBorrowedBookService(db, bookService)

	book := createTestBook(t, db, "ISBN-1", 3)
	reader := createTestReader(t, db, "reader@example.com")

	newId, err := service.Borrow(book.Id, reader.Id)
	require.NoError(t, err)

	require.NoError(t, service.Return(book.Id, reader.Id))

	updated, err := bookService.GetBookByID(book.Id)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Instances)

	borrowedBook, err := service.GetBorrowedBookByID(newId)
	require.NoError(t, err)
	require.NotNil(t, borrowedBook.ReturnAt)
}

func TestReturnTwiceFails(t *testing.T) {
	db := newTestDB(t)
	bookService := NewBookService(db)
	service := NewBorrowedBookService(db, bookService)

	book := createTestBook(t, db, "ISBN-1", 1)
	reader := createTestReader(t, db, "reader@example.com")

	_, err := service.Borrow(book.Id, reader.Id)
	require.NoError(t, err)
	require.NoError(t, service.Return(book.Id, reader.Id))

	err = service.Return(book.Id, reader.Id)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyReturned)

	// No double increment
	updated, err := bookService.GetBookByID(book.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Instances)
}

func TestReturnWithoutLoanFails(t *testing.T) {
	db := newTestDB(t)
	service := NewBorrowedBookService(db, NewBookService(db))

	book := createTestBook(t, db, "ISBN-1", 1)
	reader := createTestReader(t, db, "reader@example.com")

	err := service.Return(book.Id, reader.Id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBorrowAgainAfterReturn(t *testing.T) {
	db := newTestDB(t)
	service := NewBorrowedBookService(db, NewBookService(db))

	book := createTestBook(t, db, "ISBN-1", 1)
	reader := createTestReader(t, db, "reader@example.com")

	_, err := service.Borrow(book.Id, reader.Id)
	require.NoError(t, err)
	require.NoError(t, service.Return(book.Id, reader.Id))

	// A closed loan does not block a new borrow of the same title
	_, err = service.Borrow(book.Id, reader.Id)
	assert.NoError(t, err)
}

// Full lending round-trip: one copy, two readers.
func TestLendingScenario(t *testing.T) {
	db := newTestDB(t)
	bookService := NewBookService(db)
	service := NewBorrowedBookService(db, bookService)

	book := createTestBook(t, db, "ABC123", 1)
	r1 := createTestReader(t, db, "r1@example.com")
	r2 := createTestReader(t, db, "r2@example.com")

	// R1 borrows the only copy
	loanId, err := service.Borrow(book.Id, r1.Id)
	require.NoError(t, err)
	updated, err := bookService.GetBookByID(book.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Instances)

	// R1 cannot borrow it again
	_, err = service.Borrow(book.Id, r1.Id)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyBorrowed)

	// R2 finds no copies left
	_, err = service.Borrow(book.Id, r2.Id)
	assert.ErrorIs(t, err, apperrors.ErrUnableToBorrow)

	// R1 returns it
	require.NoError(t, service.Return(book.Id, r1.Id))
	updated, err = bookService.GetBookByID(book.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Instances)

	closed, err := service.GetBorrowedBookByID(loanId)
	require.NoError(t, err)
	require.NotNil(t, closed.ReturnAt)

	// Now R2 can borrow it
	_, err = service.Borrow(book.Id, r2.Id)
	require.NoError(t, err)
	updated, err = bookService.GetBookByID(book.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Instances)
}

func TestUpdateBorrowedBookValidatesDates(t *testing.T) {
	db := newTestDB(t)
	service := NewBorrowedBookService(db, NewBookService(db))

	book := createTestBook(t, db, "ISBN-1", 1)
	reader := createTestReader(t, db, "reader@example.com")

	newId, err := service.Borrow(book.Id, reader.Id)
	require.NoError(t, err)

	// Return date before borrow date is rejected
	badReturn := time.Now().AddDate(0, 0, -7)
	_, err = service.UpdateBorrowedBook(newId, &dtos.BorrowedBookUpdateDTO{ReturnAt: &badReturn})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)

	// A consistent correction goes through
	borrowAt := time.Now().AddDate(0, 0, -14)
	returnAt := time.Now().AddDate(0, 0, -7)
	updated, err := service.UpdateBorrowedBook(newId, &dtos.BorrowedBookUpdateDTO{
		BorrowAt: &borrowAt,
		ReturnAt: &returnAt,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ReturnAt)
}

func TestUpdateBorrowedBookNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewBorrowedBookService(db, NewBookService(db))

	now := time.Now()
	_, err := service.UpdateBorrowedBook(42, &dtos.BorrowedBookUpdateDTO{BorrowAt: &now})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteBorrowedBookKeepsInstances(t *testing.T) {
	db := newTestDB(t)
	bookService := NewBookService(db)
	service := NewBorrowedBookService(db, bookService)

	book := createTestBook(t, db, "ISBN-1", 2)
	reader := createTestReader(t, db, "reader@example.com")

	newId, err := service.Borrow(book.Id, reader.Id)
	require.NoError(t, err)

	// Administrative delete is not a return
	require.NoError(t, service.DeleteBorrowedBook(newId))

	updated, err := bookService.GetBookByID(book.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Instances)

	_, err = service.GetBorrowedBookByID(newId)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteBorrowedBookNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewBorrowedBookService(db, NewBookService(db))

	err := service.DeleteBorrowedBook(42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
