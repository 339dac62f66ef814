// Package web serves the Sol-Calc browser workflow.
//
// The page walks a project through calculation, checkout and PDF download.
// Workflow state travels in hidden form fields, so the server keeps nothing
// between requests and a reload starts over.
package web
