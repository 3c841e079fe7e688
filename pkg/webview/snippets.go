package webview

import "strings"

// Snippet templates executed via ScriptExecutor. Placeholders are filled
// with escaped or JSON-encoded values; see escapeJS.

const classListScript = `(function() {
  var els = document.querySelectorAll('%s');
  var classes = %s;
  for (var i = 0; i < els.length; i++) {
    for (var j = 0; j < classes.length; j++) {
      els[i].classList.%s(classes[j]);
    }
  }
  return els.length;
})();`

const datasetGetScript = `(function() {
  var v = document.documentElement.dataset['%s'];
  return (v === undefined) ? null : v;
})();`

const datasetSetScript = `(function() {
  document.documentElement.dataset['%s'] = '%s';
  return true;
})();`

const eventListenersScript = `(function() {
  if (typeof getEventListeners !== 'function') return {};
  var el = document.querySelector('%s');
  if (!el) return {};
  var raw = getEventListeners(el);
  var out = {};
  for (var type in raw) {
    out[type] = raw[type].map(function(l) {
      return { type: l.type, useCapture: !!l.useCapture };
    });
  }
  return out;
})();`

const removeListenersScript = `(function() {
  if (typeof getEventListeners !== 'function') return 0;
  var el = document.querySelector('%s');
  if (!el) return 0;
  var raw = getEventListeners(el);
  var removed = 0;
  for (var type in raw) {
    raw[type].slice().forEach(function(l) {
      el.removeEventListener(l.type, l.listener, l.useCapture);
      removed++;
    });
  }
  return removed;
})();`

const attachStylesheetScript = `(function() {
  var link = document.createElement('link');
  link.rel = 'stylesheet';
  link.type = 'text/css';
  link.href = '%s';
  link.onload = function() { console.debug('[domkit] stylesheet loaded:', link.href); };
  document.head.appendChild(link);
  return true;
})();`

const attachScriptScript = `(function() {
  var script = document.createElement('script');
  script.type = 'text/javascript';
  script.src = '%s';
  script.onload = function() { console.debug('[domkit] script loaded:', script.src); };
  document.head.appendChild(script);
  return true;
})();`

const showHideScript = `(function() {
  var els = document.querySelectorAll('%s');
  for (var i = 0; i < els.length; i++) {
    els[i].classList.remove('%s');
    els[i].classList.add('%s');
  }
  return els.length;
})();`

const setTextScript = `(function() {
  var els = document.querySelectorAll('%s');
  for (var i = 0; i < els.length; i++) {
    els[i].textContent = '%s';
  }
  return els.length;
})();`

const toastScript = `(function() {
  if (typeof window.__domkit_toast !== 'function') return false;
  window.__domkit_toast('%s');
  return true;
})();`

// escapeJS makes s safe inside a single-quoted JS string literal.
func escapeJS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "'", "\\'")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
