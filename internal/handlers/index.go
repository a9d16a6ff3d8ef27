package handlers

import (
	"net/http"

	"github.com/aaronzipp/mun-display/internal/committee"
)

type committeeOption struct {
	Code        string
	DisplayName string
	Topic       string
	Selected    bool
}

func (ctx *Context) committeeOptions(selected string) []committeeOption {
	codes := ctx.Committees.Codes()
	opts := make([]committeeOption, 0, len(codes))
	for _, code := range codes {
		rec, ok := ctx.Committees.Lookup(code)
		if !ok {
			continue
		}
		opts = append(opts, committeeOption{
			Code:        rec.Code,
			DisplayName: rec.DisplayName,
			Topic:       rec.Topic,
			Selected:    rec.Code == selected,
		})
	}
	return opts
}

// HandleIndex serves the committee selector
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Committees []committeeOption
		Rooms      []string
	}{
		Committees: ctx.committeeOptions(committee.Normalize(ctx.Config.DefaultCommittee)),
		Rooms:      ctx.Rooms.Codes(),
	}
	if err := ctx.Templates.ExecuteTemplate(w, "index.html", data); err != nil {
		ctx.Logger.Error("rendering index", "error", err)
	}
}

// HandleSelect redirects to the display of the chosen committee
func (ctx *Context) HandleSelect(w http.ResponseWriter, r *http.Request) {
	code := committee.Normalize(r.FormValue("code"))
	if code == "" {
		http.Error(w, "Committee code is required", http.StatusBadRequest)
		return
	}
	if _, ok := ctx.Committees.Lookup(code); !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/"+code)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/"+code, http.StatusSeeOther)
}

// HandleHealth reports liveness
func (ctx *Context) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
