package contact

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const recipient = "5519989357148"

func TestInquiryLink(t *testing.T) {
	t.Parallel()

	l := NewLinker("", "+55 (19) 98935-7148", "", "")
	link := l.Inquiry()

	require.True(t, strings.HasPrefix(link, "https://wa.me/"+recipient+"?text="), link)
	require.Contains(t, link, EscapeComponent(DefaultInquiryMessage))
	require.NotContains(t, link, "+")
	require.NotContains(t, link, " ")

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "wa.me", u.Host)
	require.Equal(t, "/"+recipient, u.Path)
	require.Equal(t, DefaultInquiryMessage, u.Query().Get("text"))
}

func TestPlanLinkNamesPlan(t *testing.T) {
	t.Parallel()

	l := NewLinker("wa.me", recipient, "", "")
	link := l.ForPlan("Premium")

	u, err := url.Parse(link)
	require.NoError(t, err)
	msg := u.Query().Get("text")
	require.Contains(t, msg, "Premium")
	require.Equal(t, "Olá! Gostaria de solicitar um orçamento para o plano Premium.", msg)
}

func TestPlanLinkEscapesReservedCharacters(t *testing.T) {
	t.Parallel()

	l := NewLinker("wa.me", recipient, "", "Plano: %s")
	link := l.ForPlan("A&B=100% #1")

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "Plano: A&B=100% #1", u.Query().Get("text"))
	require.Empty(t, u.Fragment)
}

func TestEmptyPlanFallsBackToInquiry(t *testing.T) {
	t.Parallel()

	l := NewLinker("", recipient, "Oi", "")
	require.Equal(t, l.Inquiry(), l.ForPlan("  "))
	require.Equal(t, "https://wa.me/"+recipient+"?text=Oi", l.Inquiry())
}

func TestPlanMessageWithoutMarker(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Quero o plano Básico", PlanMessage("Quero o plano", "Básico"))
}

func TestEscapeComponent(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Ol%C3%A1!%20tudo%20bem%3F", EscapeComponent("Olá! tudo bem?"))
	require.Equal(t, "(a*b)'~-_.%2B%26%3D%25%23", EscapeComponent("(a*b)'~-_.+&=%#"))

	l := NewLinker("", recipient, "Olá! (oi)", "")
	require.Equal(t, "https://wa.me/"+recipient+"?text=Ol%C3%A1!%20(oi)", l.Inquiry())
}
