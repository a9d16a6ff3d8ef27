package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/aaronzipp/mun-display/internal/render"
	"github.com/aaronzipp/mun-display/internal/store"
)

type displayData struct {
	Code       string
	Title      string
	Mode       store.ViewMode
	Operator   bool
	Board      template.HTML
	RollCall   template.HTML
	Committees []committeeOption
	ScreenURL  string
}

// HandleDisplay serves the chair's display with controls
func (ctx *Context) HandleDisplay(w http.ResponseWriter, r *http.Request) {
	ctx.serveDisplay(w, r, store.ViewOperator)
}

// HandleScreen serves the read-only audience display
func (ctx *Context) HandleScreen(w http.ResponseWriter, r *http.Request) {
	ctx.serveDisplay(w, r, store.ViewScreen)
}

func (ctx *Context) serveDisplay(w http.ResponseWriter, r *http.Request, mode store.ViewMode) {
	room, ok := ctx.openRoom(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	operator := mode == store.ViewOperator
	room.Lock()
	room.SyncRollCall()
	st := room.Session.Snapshot()
	rollCall := render.RollCall(room.Code, room.RollCall, st.RollCallOpen && operator)
	room.Unlock()

	data := displayData{
		Code:       room.Code,
		Title:      st.DisplayName,
		Mode:       mode,
		Operator:   operator,
		Board:      template.HTML(render.Board(room.Code, st, operator)),
		RollCall:   template.HTML(rollCall),
		Committees: ctx.committeeOptions(st.CommitteeCode),
		ScreenURL:  ctx.screenURL(room.Code),
	}
	if err := ctx.Templates.ExecuteTemplate(w, "display.html", data); err != nil {
		ctx.Logger.Error("rendering display", "room", room.Code, "error", err)
	}
}

func (ctx *Context) screenURL(code string) string {
	return strings.TrimRight(ctx.Config.PublicURL, "/") + "/" + code + "/screen"
}
