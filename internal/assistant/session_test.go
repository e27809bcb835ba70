// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentsAccumulateIntoOneBotMessage(t *testing.T) {
	s := NewSession()
	s.AppendUser("question")

	for _, f := range []string{"a", "b", "c"} {
		s.AppendFragment(f)
	}

	require.Equal(t, 2, s.Len())
	last, _ := s.Last()
	assert.Equal(t, SenderBot, last.Sender)
	assert.Equal(t, "abc", last.Text)
	assert.Equal(t, "abc", s.StreamedText())
}

func TestFragmentAfterEndStreamStartsNewMessage(t *testing.T) {
	s := NewSession()
	s.AppendFragment("first answer")
	s.EndStream()
	s.AppendFragment("second answer")

	require.Equal(t, 2, s.Len())
	msgs := s.Messages()
	assert.Equal(t, "first answer", msgs[0].Text)
	assert.Equal(t, "second answer", msgs[1].Text)
}

func TestStreamSurvivesInterleavedAppends(t *testing.T) {
	s := NewSession()
	s.AppendFragment("partial")
	s.AppendUser("interruption")
	s.AppendBot("instant answer")
	s.AppendFragment(" continues")

	// Fragments keep flowing into the streaming message even after
	// other messages land behind it.
	require.Equal(t, 3, s.Len())
	msgs := s.Messages()
	assert.Equal(t, "partial continues", msgs[0].Text)
	assert.Equal(t, "interruption", msgs[1].Text)
	assert.Equal(t, "instant answer", msgs[2].Text)
	assert.Equal(t, "partial continues", s.StreamedText())
}

func TestAvailabilityIsOneWay(t *testing.T) {
	s := NewSession()
	assert.True(t, s.Available())
	s.SetUnavailable()
	assert.False(t, s.Available())
}

func TestMessagesReturnsCopy(t *testing.T) {
	s := NewSession()
	s.AppendBot("hello")

	msgs := s.Messages()
	msgs[0].Text = "mutated"
	fresh, _ := s.Last()
	assert.Equal(t, "hello", fresh.Text)
}
