/**
 * Copyright (c) 2019, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package sdl

import (
	"github.com/botobag/selene/sdl/token"
)

// Source is an alias of token.Source. Most APIs that deal with SDL documents accept a Source so
// users don't need to import sdl/token themselves.
type Source = token.Source

// SourceConfig is an alias of token.SourceConfig.
type SourceConfig = token.SourceConfig

// SourceBody is an alias of token.SourceBody.
type SourceBody = token.SourceBody

// NewSource initializes a Source instance from given config.
func NewSource(config *SourceConfig) *Source {
	return token.NewSource(config)
}
