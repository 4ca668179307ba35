package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPairKey_SymmetricForBothOrderings(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.Equal(t, PairKey(a, b), PairKey(b, a))
}

func TestPairKey_SmallerUUIDFirst(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	assert.Equal(t, a.String()+":"+b.String(), PairKey(b, a))
}

func TestConversation_ParticipantHelpers(t *testing.T) {
	initiator := uuid.New()
	recipient := uuid.New()
	conv := &Conversation{InitiatorID: initiator, RecipientID: recipient}

	assert.True(t, conv.HasParticipant(initiator))
	assert.True(t, conv.HasParticipant(recipient))
	assert.False(t, conv.HasParticipant(uuid.New()))

	assert.Equal(t, recipient, conv.OtherParticipant(initiator))
	assert.Equal(t, initiator, conv.OtherParticipant(recipient))
}
