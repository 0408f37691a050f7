package main

// indexHTML is the browser control panel: admission buttons, live queue
// table, statistics, and a wait-time histogram fed over the websocket.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Hospital Queue Simulation</title>
<style>
  body { font-family: sans-serif; margin: 20px; max-width: 900px; }
  button { margin: 2px; padding: 6px 12px; }
  table { border-collapse: collapse; margin-top: 10px; width: 100%; }
  th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
  .emergency { background: #fdd; }
  .urgent { background: #fed; }
  #histogram { display: flex; align-items: flex-end; height: 120px; gap: 2px; margin-top: 10px; }
  #histogram div { background: #69b; width: 20px; }
  .stats span { display: inline-block; min-width: 160px; }
</style>
</head>
<body>
<h2>Hospital Queue Simulation</h2>
<div>
  <button onclick="add('normal')">Add Normal Patient</button>
  <button onclick="add('urgent')">Add Urgent Patient</button>
  <button onclick="add('emergency')">Add Emergency Patient</button>
  <button id="toggle" onclick="toggleService()">Start Service</button>
  <button onclick="send({type:'reset'})">Reset</button>
</div>
<div class="stats">
  <p>
    <span>Patients in queue: <b id="queueSize">0</b></span>
    <span>Current patient: <b id="current">none</b></span>
    <span>Completed: <b id="completed">0</b></span>
  </p>
  <p>
    <span>Average wait: <b id="avgWait">0.0</b> min</span>
    <span>Max wait: <b id="maxWait">0.0</b> min</span>
  </p>
</div>
<table>
  <thead><tr><th>Patient ID</th><th>Priority</th><th>Wait (min)</th></tr></thead>
  <tbody id="queue"></tbody>
</table>
<h3>Distribution of Waiting Times</h3>
<div id="histogram"></div>
<script>
let running = false;
const ws = new WebSocket("ws://" + location.host + "/ws");

function send(msg) { ws.send(JSON.stringify(msg)); }
function add(priority) { send({type: "add_patient", priority: priority}); }
function toggleService() { send({type: running ? "stop" : "start"}); }

ws.onmessage = function(ev) {
  const msg = JSON.parse(ev.data);
  if (msg.type === "status") {
    running = msg.running;
    document.getElementById("toggle").textContent = running ? "Stop Service" : "Start Service";
  } else if (msg.type === "update") {
    render(msg);
  } else if (msg.type === "error") {
    console.error(msg.error);
  }
};

function render(msg) {
  const stats = msg.stats || {};
  document.getElementById("queueSize").textContent = stats.queueSize || 0;
  document.getElementById("completed").textContent = stats.completedCount || 0;
  document.getElementById("avgWait").textContent = (stats.avgWaitMinutes || 0).toFixed(1);
  document.getElementById("maxWait").textContent = (stats.maxWaitMinutes || 0).toFixed(1);
  document.getElementById("current").textContent =
    stats.currentPatientId ? "Patient " + stats.currentPatientId : "none";

  const rows = (msg.queue || []).map(e =>
    "<tr class='" + e.priority + "'><td>Patient " + e.id + "</td><td>" + e.priority +
    "</td><td>" + e.elapsedWaitMinutes.toFixed(1) + "</td></tr>");
  document.getElementById("queue").innerHTML = rows.join("");

  drawHistogram(msg.waitTimes || []);
}

function drawHistogram(waits) {
  const el = document.getElementById("histogram");
  el.innerHTML = "";
  if (waits.length === 0) return;
  const bins = new Array(20).fill(0);
  const max = Math.max(...waits, 1);
  for (const w of waits) {
    bins[Math.min(19, Math.floor(w / max * 20))]++;
  }
  const top = Math.max(...bins);
  for (const b of bins) {
    const bar = document.createElement("div");
    bar.style.height = (b / top * 100) + "%";
    bar.title = b + " patients";
    el.appendChild(bar);
  }
}
</script>
</body>
</html>
`
