package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func validForm() url.Values {
	return url.Values{
		"firstName": {"Anna"},
		"lastName":  {"Berg"},
		"email":     {"a@b.se"},
		"pizza":     {"La Maffia"},
		"drink":     {"Cola"},
	}
}

func TestHomePage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Begränsat till 18 deltagare")
	require.Contains(t, body, `<option value="Kebabpizza">`)
}

func TestSubmitForm(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postForm(t, "/", validForm())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Registrering mottagen!")
	require.NotContains(t, rec.Body.String(), `value="Anna"`, "form is cleared")

	regs, err := env.store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 1)
	require.Equal(t, "La Maffia", regs[0].Pizza)
}

func TestSubmitForm_Invalid(t *testing.T) {
	env := newTestEnv(t)

	form := validForm()
	form.Set("email", "nope")
	form.Set("pizza", "Margherita")

	rec := env.postForm(t, "/", form)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Ange en giltig e-postadress")
	require.Contains(t, body, "Välj en pizza från menyn")
	require.Contains(t, body, `value="Anna"`, "submitted values are kept")

	regs, err := env.store.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, regs)
}

func TestAdminPage_RedirectsWhenLoggedOut(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/admin", "", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/auth", rec.Header().Get("Location"))
}

func TestLoginForm(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postForm(t, "/auth", url.Values{"username": {"Oscar"}, "password": {"wrong"}})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Fel användarnamn eller lösenord.")

	rec = env.postForm(t, "/auth", url.Values{"username": {"Oscar"}, "password": {"123"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()

	rec = env.do(t, http.MethodGet, "/admin", "", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Inloggad som Oscar")

	rec = env.do(t, http.MethodGet, "/auth", "", "", cookies...)
	require.Equal(t, http.StatusSeeOther, rec.Code, "logged in users skip the login page")
}

func TestAdminPage_DeleteAndLogout(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.login(t)

	require.Equal(t, http.StatusOK, env.postForm(t, "/", validForm()).Code)
	regs, err := env.store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 1)

	rec := env.do(t, http.MethodGet, "/admin", "", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "1 / 18")
	require.Contains(t, body, "17 platser kvar")
	require.Contains(t, body, "La Maffia: 1 st")
	require.Contains(t, body, "/registrations/export")

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/admin/registrations/%d/delete", regs[0].ID), "", "", cookies...)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	regs, err = env.store.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, regs)

	rec = env.do(t, http.MethodPost, "/admin/logout", "", "", cookies...)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	rec = env.do(t, http.MethodGet, "/admin", "", "", cookies...)
	require.Equal(t, http.StatusSeeOther, rec.Code)
}
