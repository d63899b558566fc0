/*
Copyright 2024 The iccinspect Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"bytes"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mechiko/iccinspect/pkg/icc"
	"github.com/mechiko/iccinspect/pkg/report"
)

// handleProfile accepts a multipart upload under the "profile" field,
// decodes it, and responds with the rendered text report. A decode
// failure that is fatal (not a profile, truncated header) is a 400;
// anything else still renders, Diagnostics and all, unless
// cfg.StrictElements makes Render fail, which is a 500.
func (s *Server) handleProfile(c echo.Context) error {
	fh, err := c.FormFile("profile")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing \"profile\" form file")
	}
	if fh.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, errUploadTooLarge.Error())
	}

	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := icc.Decode(buf)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var out bytes.Buffer
	if err := report.Render(&out, p, s.cfg); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", out.Bytes())
}
