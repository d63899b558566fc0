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

// Package echolog adapts the report server's zap logger into an echo
// request-logging middleware, plus a panic-recovery middleware that
// logs instead of crashing the process.
package echolog

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const loggerMsg = "served"
const recoverMsg = "recovered"

// Logger returns middleware that logs one structured entry per
// request: method, path, status, client IP, and latency.
func Logger(log *zap.Logger) echo.MiddlewareFunc {
	log = log.WithOptions(zap.WithCaller(false))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			herr := next(c)
			if herr != nil {
				c.Error(herr)
			}

			req := c.Request()
			resp := c.Response()

			fields := []zapcore.Field{
				zap.String("method", req.Method),
				zap.String("path", req.RequestURI),
				zap.Int("status", resp.Status),
				zap.String("status_text", http.StatusText(resp.Status)),
				zap.String("client_ip", c.RealIP()),
				zap.Duration("latency", time.Since(start)),
			}
			if herr != nil {
				fields = append(fields, zap.Error(herr))
			}

			switch {
			case resp.Status >= 500:
				log.Error(loggerMsg, fields...)
			case resp.Status >= 400:
				log.Warn(loggerMsg, fields...)
			default:
				log.Info(loggerMsg, fields...)
			}

			return nil
		}
	}
}

// stackTraceSize bounds the buffer used to capture a panic's stack
// trace.
const stackTraceSize = 4 << 10

// Recover returns middleware that turns a panicking handler into a
// logged 500 response instead of taking down the server.
func Recover(log *zap.Logger) echo.MiddlewareFunc {
	log = log.WithOptions(zap.AddStacktrace(zap.FatalLevel + 1))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				e, ok := r.(error)
				if !ok {
					e = fmt.Errorf("panic: %v", r)
				}

				stack := make([]byte, stackTraceSize)
				n := runtime.Stack(stack, false)

				log.Error(recoverMsg,
					zap.Error(e),
					zap.String("method", c.Request().Method),
					zap.String("path", c.Request().RequestURI),
					zap.String("client_ip", c.RealIP()),
					zap.ByteString("stacktrace", stack[:n]),
				)
				err = echo.NewHTTPError(http.StatusInternalServerError)
			}()
			return next(c)
		}
	}
}
