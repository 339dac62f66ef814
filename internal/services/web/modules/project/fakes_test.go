package project

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

var errTest = errors.New("backend failure")

// fakeGateway implements ProjectGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	projectID      string
	checkoutURL    string
	calculateErr   error
	checkoutErr    error
	calculateCalls []CalculateInput
	checkoutCalls  []string
}

func (f *fakeGateway) Calculate(_ context.Context, input CalculateInput) (string, error) {
	f.calculateCalls = append(f.calculateCalls, input)
	if f.calculateErr != nil {
		return "", f.calculateErr
	}
	return f.projectID, nil
}

func (f *fakeGateway) Checkout(_ context.Context, projectID string) (string, error) {
	f.checkoutCalls = append(f.checkoutCalls, projectID)
	if f.checkoutErr != nil {
		return "", f.checkoutErr
	}
	return f.checkoutURL, nil
}

func formBody(values map[string]string) *strings.Reader {
	form := url.Values{}
	for key, value := range values {
		form.Set(key, value)
	}
	return strings.NewReader(form.Encode())
}

func setFormHeader(r *http.Request) {
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
}

// pageControls summarizes what a rendered workflow page offers.
type pageControls struct {
	buttons []string
	links   []string
	outputs []string
}

func (p pageControls) hasButton(value string) bool {
	for _, button := range p.buttons {
		if button == value {
			return true
		}
	}
	return false
}

func (p pageControls) hasLink(target string) bool {
	for _, link := range p.links {
		if link == target {
			return true
		}
	}
	return false
}

func parseControls(t *testing.T, body string) pageControls {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	var controls pageControls
	var walk func(*html.Node, bool)
	walk = func(n *html.Node, inWorkflow bool) {
		if n.Type == html.ElementNode {
			if n.Data == "section" && attrValue(n, "id") == "project-workflow" {
				inWorkflow = true
			}
			if inWorkflow {
				switch n.Data {
				case "button":
					controls.buttons = append(controls.buttons, attrValue(n, "value"))
				case "a":
					controls.links = append(controls.links, attrValue(n, "href"))
				case "output":
					if n.FirstChild != nil {
						controls.outputs = append(controls.outputs, n.FirstChild.Data)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inWorkflow)
		}
	}
	walk(doc, false)
	return controls
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
