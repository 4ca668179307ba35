package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"shelfswap/internal/domain/entity"
	"shelfswap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openIntegrationDB connects to the database named by SHELFSWAP_TEST_DSN and
// migrates the schema. Tests using it are skipped when the variable is unset.
func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dsn := os.Getenv("SHELFSWAP_TEST_DSN")
	if dsn == "" {
		t.Skip("SHELFSWAP_TEST_DSN not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	// A fresh test database has no UUIDv7 generator for the ID defaults.
	require.NoError(t, db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_proc WHERE proname = 'uuid_generate_v7') THEN
				CREATE FUNCTION uuid_generate_v7() RETURNS uuid AS 'SELECT gen_random_uuid()' LANGUAGE sql;
			END IF;
		END
		$$
	`).Error)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.BookModel{},
		&model.ListEntryModel{},
		&model.ConversationModel{},
		&model.MessageModel{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, firstName string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, db.Create(&model.UserModel{
		ID:           id,
		Email:        firstName + "-" + id.String()[:8] + "@example.com",
		PasswordHash: "integration",
		FirstName:    firstName,
	}).Error)
	t.Cleanup(func() {
		db.Where("user_id = ?", id).Delete(&model.ListEntryModel{})
		db.Where("id = ?", id).Delete(&model.UserModel{})
	})

	return id
}

func seedBook(t *testing.T, db *gorm.DB) string {
	t.Helper()

	key := "OL" + uuid.New().String()[:8] + "W"
	require.NoError(t, db.Create(&model.BookModel{
		Key:   key,
		Title: "Integration Test Book " + key,
	}).Error)
	t.Cleanup(func() {
		db.Where("key = ?", key).Delete(&model.BookModel{})
	})

	return key
}

func TestShelfRepository_HasMutualBooks_Symmetric(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()
	repo := NewShelfRepository(db)

	owner := seedUser(t, db, "Owner")
	wanter := seedUser(t, db, "Wanter")
	stranger := seedUser(t, db, "Stranger")
	bookKey := seedBook(t, db)

	// One direction only: owner shelves the book, wanter wishes for it.
	require.NoError(t, repo.AddEntry(ctx, owner, bookKey, entity.KindShelf))
	require.NoError(t, repo.AddEntry(ctx, wanter, bookKey, entity.KindWishlist))

	forward, err := repo.HasMutualBooks(ctx, owner, wanter)
	require.NoError(t, err)
	reverse, err := repo.HasMutualBooks(ctx, wanter, owner)
	require.NoError(t, err)

	// The single-direction overlap must be visible from both argument orders.
	assert.True(t, forward)
	assert.True(t, reverse)
	assert.Equal(t, forward, reverse)

	none, err := repo.HasMutualBooks(ctx, owner, stranger)
	require.NoError(t, err)
	noneReverse, err := repo.HasMutualBooks(ctx, stranger, owner)
	require.NoError(t, err)
	assert.False(t, none)
	assert.False(t, noneReverse)
}

func TestMessageRepository_MarkRead_Idempotent(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()
	conversationRepo := NewConversationRepository(db)
	messageRepo := NewMessageRepository(db)

	alice := seedUser(t, db, "Alice")
	bob := seedUser(t, db, "Bob")

	now := time.Now().UTC()
	conversation := &entity.Conversation{
		InitiatorID:   alice,
		RecipientID:   bob,
		Status:        entity.ConversationAccepted,
		CreatedAt:     now,
		LastMessageAt: now,
	}
	require.NoError(t, conversationRepo.Create(ctx, conversation))
	t.Cleanup(func() {
		db.Where("conversation_id = ?", conversation.ID).Delete(&model.MessageModel{})
		db.Where("id = ?", conversation.ID).Delete(&model.ConversationModel{})
	})

	for i, content := range []string{"first from bob", "second from bob"} {
		require.NoError(t, messageRepo.Create(ctx, &entity.Message{
			ConversationID: conversation.ID,
			SenderID:       bob,
			Content:        content,
			SentAt:         now.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, messageRepo.Create(ctx, &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       alice,
		Content:        "from alice",
		SentAt:         now.Add(2 * time.Second),
	}))

	unread, err := messageRepo.CountUnread(ctx, conversation.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	require.NoError(t, messageRepo.MarkRead(ctx, conversation.ID, alice))

	unread, err = messageRepo.CountUnread(ctx, conversation.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	// A second pass touches nothing and still reports zero.
	require.NoError(t, messageRepo.MarkRead(ctx, conversation.ID, alice))

	unread, err = messageRepo.CountUnread(ctx, conversation.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	// Alice's own message stays unread from Bob's side.
	unreadForBob, err := messageRepo.CountUnread(ctx, conversation.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, 1, unreadForBob)
}
