package report

// pageCSS is embedded into every generated report so the file stays
// self-contained: no external assets, works from file:// and offline.
const pageCSS = `
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #0f1117;
    color: #e2e8f0;
    min-height: 100vh;
    padding: 24px;
  }
  .container { max-width: 1200px; margin: 0 auto; }
  /* Header card */
  .header-card {
    background: linear-gradient(135deg, #1e293b 0%, #0f172a 100%);
    border: 1px solid #334155;
    border-radius: 12px;
    padding: 24px 28px;
    margin-bottom: 20px;
  }
  .report-title { font-size: 26px; font-weight: 700; color: #f1f5f9; margin-bottom: 16px; }
  .meta-grid {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(220px, 1fr));
    gap: 12px;
  }
  .meta-item { display: flex; flex-direction: column; gap: 2px; }
  .meta-label { font-size: 11px; font-weight: 600; color: #64748b; text-transform: uppercase; letter-spacing: 0.05em; }
  .meta-value { font-size: 13px; color: #cbd5e1; font-family: monospace; word-break: break-all; }
  /* Summary panel */
  .summary-bar {
    display: flex; gap: 24px; flex-wrap: wrap;
    padding: 14px 20px; background: #1e293b;
    border: 1px solid #334155; border-radius: 12px;
    margin-bottom: 20px;
    font-size: 13px; color: #64748b;
  }
  .summary-bar span { display: flex; align-items: center; gap: 6px; }
  .summary-bar strong { color: #94a3b8; }
  /* Question card */
  .question-card {
    background: #1e293b;
    border: 1px solid #334155;
    border-radius: 12px;
    margin-bottom: 20px;
    overflow: hidden;
  }
  .question-header {
    padding: 14px 20px;
    border-bottom: 1px solid #334155;
    background: #0f172a;
    display: flex; align-items: center; gap: 10px; flex-wrap: wrap;
  }
  .question-text { font-size: 15px; font-weight: 600; color: #e2e8f0; }
  .question-id {
    background: #334155; color: #94a3b8;
    padding: 2px 8px; border-radius: 10px; font-size: 11px; font-weight: 600;
    font-family: monospace;
  }
  .archetype-tag {
    background: #2d1b69; color: #a78bfa;
    padding: 2px 8px; border-radius: 10px; font-size: 11px; font-weight: 600;
  }
  .debug-info {
    padding: 8px 20px; background: #0f172a;
    border-bottom: 1px solid #334155;
    font-size: 11px; color: #475569; font-family: monospace;
  }
  /* Respondent answers */
  .respondent {
    padding: 12px 20px;
    border-bottom: 1px solid #263244;
  }
  .respondent:last-child { border-bottom: none; }
  .respondent-name { font-size: 12px; font-weight: 600; color: #60a5fa; margin-bottom: 6px; }
  .respondent-meta { margin-left: 10px; font-weight: 400; color: #475569; font-family: monospace; }
  .answer { font-size: 14px; color: #cbd5e1; }
  .long-text {
    white-space: pre-wrap;
    background: #0f172a; border-radius: 8px;
    padding: 10px 14px; font-size: 13px;
  }
  .no-response { color: #475569; font-style: italic; }
  .other-text { font-size: 13px; color: #94a3b8; margin-top: 4px; }
  /* Form items */
  .form-table { border-collapse: collapse; font-size: 13px; }
  .form-table td { padding: 4px 14px 4px 0; vertical-align: top; }
  .form-label { color: #64748b; white-space: nowrap; }
  /* Matrix */
  .matrix-wrapper { overflow-x: auto; }
  .matrix-table { border-collapse: collapse; font-size: 13px; margin-top: 4px; }
  .matrix-table th {
    padding: 6px 12px; text-align: left;
    font-size: 11px; font-weight: 600; color: #475569;
    border-bottom: 1px solid #334155;
  }
  .matrix-table td { padding: 6px 12px; border-bottom: 1px solid #263244; color: #cbd5e1; }
  .matrix-table td.row-label { color: #64748b; }
  /* Multi-select */
  .choice-list { margin: 4px 0 0 20px; }
  .choice-list li { padding: 2px 0; color: #cbd5e1; }
  /* Drill-down */
  .drill-path { display: flex; align-items: center; gap: 8px; flex-wrap: wrap; }
  .drill-segment {
    background: #0f172a; border: 1px solid #334155;
    padding: 3px 10px; border-radius: 8px; font-size: 13px;
  }
  .drill-arrow { color: #475569; }
  /* Value classes */
  .url-link { color: #60a5fa; text-decoration: none; }
  .url-link:hover { text-decoration: underline; }
  .file-ref { color: #fbbf24; font-family: monospace; }
  .json-data {
    background: #0f172a; border-radius: 8px;
    padding: 10px 14px; font-size: 12px; font-family: monospace;
    overflow-x: auto; margin-top: 4px;
  }
  .coordinate { font-family: monospace; color: #34d399; }
  .date-value { font-family: monospace; color: #c084fc; }
  /* Footer */
  .footer {
    text-align: center; padding: 20px;
    font-size: 11px; color: #334155;
  }
  @media (max-width: 600px) {
    body { padding: 12px; }
    .report-title { font-size: 20px; }
  }
`
