// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
)

// alerts writes the application alert headers read by the web client:
//
//	X-<app>-alert:  <app>.<entity>.created
//	X-<app>-params: <id>
//
// and, on a rejected request, X-<app>-error: error.<key>.
type alerts struct {
	appName string
}

func (a alerts) alertHeader() string  { return "X-" + a.appName + "-alert" }
func (a alerts) paramsHeader() string { return "X-" + a.appName + "-params" }
func (a alerts) errorHeader() string  { return "X-" + a.appName + "-error" }

func (a alerts) created(w http.ResponseWriter, entity, param string) {
	a.alert(w, entity+".created", param)
}

func (a alerts) updated(w http.ResponseWriter, entity, param string) {
	a.alert(w, entity+".updated", param)
}

func (a alerts) deleted(w http.ResponseWriter, entity, param string) {
	a.alert(w, entity+".deleted", param)
}

func (a alerts) failure(w http.ResponseWriter, entity, key string) {
	w.Header().Set(a.errorHeader(), "error."+key)
	w.Header().Set(a.paramsHeader(), entity)
}

func (a alerts) alert(w http.ResponseWriter, key, param string) {
	w.Header().Set(a.alertHeader(), a.appName+"."+key)
	w.Header().Set(a.paramsHeader(), url.QueryEscape(param))
}
