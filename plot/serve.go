// This file is part of Mifgen.
//
// Mifgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mifgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mifgen.  If not, see <https://www.gnu.org/licenses/>.

package plot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/logger"
)

// Address is the default address used by Serve().
const Address = "localhost:12601"

// Handler returns an http.Handler that serves the rendered plot. The plot is
// rendered once, when the handler is created.
func (p *Plot) Handler() (http.Handler, error) {
	var page bytes.Buffer
	if err := p.Render(&page); err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page.Bytes())
	}), nil
}

// Serve the plot at the address until the context is cancelled. The URL of
// the plot is written to output once the server is listening.
func (p *Plot) Serve(ctx context.Context, addr string, output io.Writer) error {
	h, err := p.Handler()
	if err != nil {
		return err
	}

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return curated.Errorf(RenderError, err)
	}

	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(l)
	}()

	output.Write([]byte(fmt.Sprintf("plot available at http://%s/\n", l.Addr())))
	logger.Logf(logger.Allow, "plot", "serving at %s", l.Addr())

	select {
	case err := <-done:
		return curated.Errorf(RenderError, err)
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return curated.Errorf(RenderError, err)
	}

	if err := <-done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return curated.Errorf(RenderError, err)
	}

	logger.Log(logger.Allow, "plot", "server stopped")
	return nil
}
