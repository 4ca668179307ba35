package handler

import (
	"log/slog"
	"net/http"

	"shelfswap/internal/delivery/http/response"
	"shelfswap/internal/domain/entity"
	"shelfswap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for catalog and list handlers.
type BookHandler struct {
	uc     usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

type addBookRequest struct {
	Key     string `json:"key" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Author  string `json:"author"`
	CoverID int    `json:"coverId"`
}

// matchedBooksResponse holds both directions of a direct match.
type matchedBooksResponse struct {
	TheyOwn []*entity.Book `json:"theyOwn"`
	IOwn    []*entity.Book `json:"iOwn"`
}

// AddToShelf places a book on the caller's shelf.
func (h *BookHandler) AddToShelf(c echo.Context) error {
	return h.addBook(c, entity.KindShelf)
}

// AddToWishlist places a book on the caller's wishlist.
func (h *BookHandler) AddToWishlist(c echo.Context) error {
	return h.addBook(c, entity.KindWishlist)
}

func (h *BookHandler) addBook(c echo.Context, kind entity.ListKind) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req addBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.uc.AddBook(c.Request().Context(), usecase.AddBookInput{
		UserID:  userID,
		Kind:    kind,
		Key:     req.Key,
		Title:   req.Title,
		Author:  req.Author,
		CoverID: req.CoverID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, book, "Book added successfully")
}

// RemoveFromShelf takes a book off the caller's shelf.
func (h *BookHandler) RemoveFromShelf(c echo.Context) error {
	return h.removeBook(c, entity.KindShelf)
}

// RemoveFromWishlist takes a book off the caller's wishlist.
func (h *BookHandler) RemoveFromWishlist(c echo.Context) error {
	return h.removeBook(c, entity.KindWishlist)
}

func (h *BookHandler) removeBook(c echo.Context, kind entity.ListKind) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveBook(c.Request().Context(), userID, c.Param("bookId"), kind); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Book removed successfully")
}

// GetShelf lists a user's shelf.
func (h *BookHandler) GetShelf(c echo.Context) error {
	return h.listBooks(c, entity.KindShelf)
}

// GetWishlist lists a user's wishlist.
func (h *BookHandler) GetWishlist(c echo.Context) error {
	return h.listBooks(c, entity.KindWishlist)
}

func (h *BookHandler) listBooks(c echo.Context, kind entity.ListKind) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	books, err := h.uc.ListBooks(c.Request().Context(), userID, kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Books retrieved successfully")
}

// Search finds shelved books by title substring.
func (h *BookHandler) Search(c echo.Context) error {
	books, err := h.uc.SearchBooks(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "Books retrieved successfully")
}

// GetBook retrieves a single catalog entry.
func (h *BookHandler) GetBook(c echo.Context) error {
	book, err := h.uc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book retrieved successfully")
}

// GetBookOwners lists the users offering the book, excluding the caller.
func (h *BookHandler) GetBookOwners(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	owners, err := h.uc.GetBookOwners(c.Request().Context(), c.Param("bookId"), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	responses := make([]*UserResponse, 0, len(owners))
	for _, owner := range owners {
		responses = append(responses, toUserResponse(owner))
	}

	return response.Success(c, http.StatusOK, responses, "Book owners retrieved successfully")
}

// GetMatchedBooks computes the direct match between the caller and another user.
func (h *BookHandler) GetMatchedBooks(c echo.Context) error {
	viewerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	otherID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	output, err := h.uc.MatchedBooks(c.Request().Context(), viewerID, otherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &matchedBooksResponse{
		TheyOwn: output.TheyOwn,
		IOwn:    output.IOwn,
	}, "Matched books retrieved successfully")
}
