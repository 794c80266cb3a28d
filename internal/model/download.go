// Copyright 2026 The JReleaser Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"path"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/jreleaser/jreleaser/internal/model/httptypes"
	"github.com/jreleaser/jreleaser/pkg/api"
)

// Downloader is implemented by all downloaders.
type Downloader interface {
	Activatable
	Named
	Type() string
	ConfigPath() string
	downloaderBase() *DownloaderBase
}

// Unpack controls whether a downloaded archive is extracted.
type Unpack struct {
	Enabled       *bool `json:"enabled"`
	SkipRootEntry *bool `json:"skip_root_entry"`
}

// Asset is a file to download.
type Asset struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Unpack Unpack `json:"unpack"`
}

// DownloaderBase holds the fields shared by all downloaders.
type DownloaderBase struct {
	NamedBase
	Activation
	Timeouts
	Assets          []Asset         `json:"assets" model:"replace"`
	ExtraProperties ExtraProperties `json:"extra_properties"`
}

func (b *DownloaderBase) downloaderBase() *DownloaderBase {
	return b
}

// ResolvedAsset renders the input and output of a.
// The output defaults to the last path element of the input.
func (b *DownloaderBase) ResolvedAsset(rc RunContext, prefix string, a *Asset) (input, output string, err error) {
	props := templateProps(rc, prefix, &b.ExtraProperties)
	input, err = rc.Render(a.Input, props)
	if err != nil {
		return
	}
	if a.Output == "" {
		output = path.Base(input)
		return
	}
	output, err = rc.Render(a.Output, props)
	return
}

func downloadPath(typ, name string) string {
	return "download." + typ + "." + name
}

// HTTPDownloader downloads assets with HTTP GET.
type HTTPDownloader struct {
	DownloaderBase
	Authorization httptypes.Authorization `json:"authorization"`
	Username      string                  `json:"username"`
	Password      string                  `json:"password" model:"secret"`
	Headers       map[string]string       `json:"headers" model:"bykey"`

	immutable api.HTTPDownloader
}

// NewHTTPDownloader creates a new HTTP downloader with the given name.
func NewHTTPDownloader(name string) *HTTPDownloader {
	d := &HTTPDownloader{}
	d.Name = name
	return d
}

func (d *HTTPDownloader) Type() string { return HTTPName }
func (d *HTTPDownloader) ConfigPath() string { return downloadPath(HTTPName, d.Name) }

func (d *HTTPDownloader) IsEnabled(rc RunContext) bool {
	return d.Activation.IsEnabled(rc, d.ConfigPath())
}

// Merge fills in the unset fields in d from src.
func (d *HTTPDownloader) Merge(src *HTTPDownloader) {
	Merge(d, src)
}

func (d *HTTPDownloader) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, d, full)
}

func (d *HTTPDownloader) AsImmutable() api.HTTPDownloader {
	if d.immutable == nil {
		d.immutable = httpDownloaderView{downloaderView: newDownloaderView(&d.DownloaderBase, HTTPName), d: d}
	}
	return d.immutable
}

// FTPDownloader downloads assets from a FTP server.
type FTPDownloader struct {
	DownloaderBase
	Host     string `json:"host"`
	Port     *int   `json:"port"`
	Username string `json:"username"`
	Password string `json:"password" model:"secret"`

	immutable api.FTPDownloader
}

// NewFTPDownloader creates a new FTP downloader with the given name.
func NewFTPDownloader(name string) *FTPDownloader {
	d := &FTPDownloader{}
	d.Name = name
	return d
}

func (d *FTPDownloader) Type() string { return FTPName }
func (d *FTPDownloader) ConfigPath() string { return downloadPath(FTPName, d.Name) }

func (d *FTPDownloader) IsEnabled(rc RunContext) bool {
	return d.Activation.IsEnabled(rc, d.ConfigPath())
}

// Merge fills in the unset fields in d from src.
func (d *FTPDownloader) Merge(src *FTPDownloader) {
	Merge(d, src)
}

func (d *FTPDownloader) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, d, full)
}

func (d *FTPDownloader) AsImmutable() api.FTPDownloader {
	if d.immutable == nil {
		d.immutable = ftpDownloaderView{downloaderView: newDownloaderView(&d.DownloaderBase, FTPName), d: d}
	}
	return d.immutable
}

// Download holds all downloaders.
type Download struct {
	Activation
	HTTP Registry[*HTTPDownloader] `json:"http"`
	FTP  Registry[*FTPDownloader]  `json:"ftp"`

	immutable api.Download
}

func (d *Download) ConfigPath() string { return "download" }

func (d *Download) IsEnabled(rc RunContext) bool {
	return d.Activation.IsEnabled(rc, d.ConfigPath())
}

// FindDownloader returns the downloader of the given type and name.
// Both are trimmed and matched ignoring case.
func (d *Download) FindDownloader(typ, name string) (Downloader, error) {
	switch normalizeName(typ) {
	case HTTPName:
		return findDownloader(&d.HTTP, name)
	case FTPName:
		return findDownloader(&d.FTP, name)
	case "":
		return nil, newConfigError(KeyBlankName, nil, "downloader type")
	default:
		return nil, newConfigError(KeyUnsupportedDownloader, nil, typ)
	}
}

func findDownloader[E Downloader](r *Registry[E], name string) (Downloader, error) {
	e, err := r.FindByName(name)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// All returns all downloaders in run order.
func (d *Download) All() []Downloader {
	var all []Downloader
	for _, e := range d.HTTP.All() {
		all = append(all, e)
	}
	for _, e := range d.FTP.All() {
		all = append(all, e)
	}
	return all
}

// EnabledDownloaders returns the enabled downloaders in run order.
// None are enabled if Download itself is not.
func (d *Download) EnabledDownloaders(rc RunContext) []Downloader {
	if !d.IsEnabled(rc) {
		return nil
	}
	var enabled []Downloader
	for _, e := range d.All() {
		if e.IsEnabled(rc) {
			enabled = append(enabled, e)
		}
	}
	return enabled
}

// Merge fills in the unset fields in d from src.
func (d *Download) Merge(src *Download) {
	Merge(d, src)
}

// Migrate replaces all legacy enabled flags with their active equivalent.
func (d *Download) Migrate(rc RunContext) {
	d.Activation.Migrate(rc, d.ConfigPath())
	for _, e := range d.All() {
		e.downloaderBase().Migrate(rc, e.ConfigPath())
	}
}

func (d *Download) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, d, full)
}

func (d *Download) AsImmutable() api.Download {
	if d.immutable == nil {
		d.immutable = downloadView{activatableView: activatableView{a: &d.Activation}, d: d}
	}
	return d.immutable
}

type downloadView struct {
	activatableView
	d *Download
}

func (v downloadView) HTTP() api.Map[string, api.HTTPDownloader] {
	return newRegistryView(&v.d.HTTP, func(e *HTTPDownloader) api.HTTPDownloader { return e.AsImmutable() })
}

func (v downloadView) FTP() api.Map[string, api.FTPDownloader] {
	return newRegistryView(&v.d.FTP, func(e *FTPDownloader) api.FTPDownloader { return e.AsImmutable() })
}

type downloaderView struct {
	activatableView
	extraView
	timeoutsView
	b   *DownloaderBase
	typ string
}

func newDownloaderView(b *DownloaderBase, typ string) downloaderView {
	return downloaderView{
		activatableView: activatableView{a: &b.Activation},
		extraView:       extraView{e: &b.ExtraProperties},
		timeoutsView:    timeoutsView{t: &b.Timeouts},
		b:               b,
		typ:             typ,
	}
}

func (v downloaderView) Name() string { return v.b.Name }
func (v downloaderView) Type() string { return v.typ }

func (v downloaderView) Assets() api.List[api.Asset] {
	return mappedListView[Asset, api.Asset]{
		s: &v.b.Assets,
		f: func(a *Asset) api.Asset { return assetView{a: a} },
	}
}

type assetView struct {
	a *Asset
}

func (v assetView) Input() string { return v.a.Input }
func (v assetView) Output() string { return v.a.Output }
func (v assetView) Unpack() api.Unpack { return unpackView{u: &v.a.Unpack} }

type unpackView struct {
	u *Unpack
}

func (v unpackView) Enabled() bool { return BoolOr(v.u.Enabled, false) }
func (v unpackView) SkipRootEntry() bool { return BoolOr(v.u.SkipRootEntry, false) }

type httpDownloaderView struct {
	downloaderView
	d *HTTPDownloader
}

func (v httpDownloaderView) Authorization() string { return v.d.Authorization.String() }
func (v httpDownloaderView) Username() string { return v.d.Username }
func (v httpDownloaderView) Password() string { return v.d.Password }

func (v httpDownloaderView) Headers() api.Map[string, string] {
	return goMapView[string]{m: &v.d.Headers}
}

type ftpDownloaderView struct {
	downloaderView
	d *FTPDownloader
}

func (v ftpDownloaderView) Host() string { return v.d.Host }
func (v ftpDownloaderView) Username() string { return v.d.Username }
func (v ftpDownloaderView) Password() string { return v.d.Password }

func (v ftpDownloaderView) Port() int {
	if v.d.Port == nil {
		return 21
	}
	return *v.d.Port
}
