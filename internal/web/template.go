package web

// homeTemplate is the embedded single-page UI: file picker, process
// trigger, details preview, download action.
const homeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Renovation Transcript to Excel</title>
<style>
body { font-family: "Segoe UI", Tahoma, Geneva, Verdana, sans-serif; max-width: 900px; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { font-size: 1.6rem; }
.panel { border: 1px solid #ddd; border-radius: 6px; padding: 1rem 1.5rem; margin: 1rem 0; }
button { background: #4F81BD; color: #fff; border: none; border-radius: 4px; padding: 0.5rem 1.2rem; font-size: 1rem; cursor: pointer; }
button:disabled { background: #aaa; cursor: default; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; vertical-align: top; }
th { background: #4F81BD; color: #fff; }
.error { color: #b00020; }
.warn { color: #8a6d00; background: #fff8dc; padding: 0.5rem; border-radius: 4px; }
pre { white-space: pre-wrap; background: #f6f6f6; padding: 0.5rem; }
</style>
</head>
<body>
<h1>Renovation Transcript &#8614; Excel Generator</h1>
<p>Upload a DOCX or PDF transcript about a renovation project, extract the key
details with GPT, and download a formatted Excel file.</p>

<div class="panel">
  <input type="file" id="file" accept=".docx,.pdf">
  <button id="process" disabled>Process File with GPT</button>
  <p id="status"></p>
</div>

<div class="panel" id="results" style="display:none">
  <h2>Extracted details</h2>
  <div id="fallback-note" class="warn" style="display:none">
    The model response was not valid JSON; showing the fallback record.
    <pre id="raw-output"></pre>
  </div>
  <table id="details-table"></table>
  <p><button id="download">Download Excel</button></p>
</div>

<script>
const fileInput = document.getElementById("file");
const processBtn = document.getElementById("process");
const downloadBtn = document.getElementById("download");
const statusEl = document.getElementById("status");
let currentDetails = null;

fileInput.addEventListener("change", () => {
  processBtn.disabled = !fileInput.files.length;
});

processBtn.addEventListener("click", async () => {
  const file = fileInput.files[0];
  if (!file) return;
  processBtn.disabled = true;
  statusEl.textContent = "Processing transcript...";
  statusEl.className = "";
  document.getElementById("results").style.display = "none";
  try {
    const form = new FormData();
    form.append("file", file);
    const resp = await fetch("/process", { method: "POST", body: form });
    const body = await resp.json();
    if (!body.success) throw new Error(body.error || "processing failed");
    currentDetails = body.details;
    renderDetails(body);
    statusEl.textContent = "Extraction complete.";
  } catch (err) {
    statusEl.textContent = "An error occurred: " + err.message;
    statusEl.className = "error";
  } finally {
    processBtn.disabled = false;
  }
});

downloadBtn.addEventListener("click", async () => {
  if (!currentDetails) return;
  const resp = await fetch("/export", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify(currentDetails),
  });
  if (!resp.ok) {
    statusEl.textContent = "An error occurred while generating the spreadsheet.";
    statusEl.className = "error";
    return;
  }
  const blob = await resp.blob();
  const url = URL.createObjectURL(blob);
  const a = document.createElement("a");
  a.href = url;
  a.download = "Renovation_Extracted_Details.xlsx";
  a.click();
  URL.revokeObjectURL(url);
});

function renderDetails(body) {
  const table = document.getElementById("details-table");
  table.innerHTML = "<tr><th>Field</th><th>Value</th></tr>";
  for (const [key, value] of Object.entries(body.details)) {
    const row = table.insertRow();
    row.insertCell().textContent = key;
    row.insertCell().textContent = Array.isArray(value) ? value.join(", ") : String(value);
  }
  const note = document.getElementById("fallback-note");
  if (body.fallback) {
    note.style.display = "";
    document.getElementById("raw-output").textContent = body.raw_output || "";
  } else {
    note.style.display = "none";
  }
  document.getElementById("results").style.display = "";
}
</script>
</body>
</html>
`
