package main

// indexHTML is the whole client: a canvas showing the balls, the quadtree
// node rectangles and the k nearest balls to the mouse.
const indexHTML = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>ballpit</title>
<style>
  body { margin: 0; background: #111; color: #ccc; font: 13px monospace; }
  #hud { position: fixed; top: 8px; left: 8px; }
  canvas { display: block; margin: 0 auto; background: #181818; }
</style>
</head>
<body>
<div id="hud"></div>
<canvas id="c" width="800" height="600"></canvas>
<script>
  const canvas = document.getElementById("c");
  const ctx = canvas.getContext("2d");
  const hud = document.getElementById("hud");
  const ws = new WebSocket("ws://" + location.host + "/ws");

  canvas.addEventListener("mousemove", (ev) => {
    const r = canvas.getBoundingClientRect();
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({type: "cursor", x: ev.clientX - r.left, y: ev.clientY - r.top}));
    }
  });

  ws.onmessage = (ev) => {
    const f = JSON.parse(ev.data);
    ctx.clearRect(0, 0, canvas.width, canvas.height);

    ctx.strokeStyle = "#2a4a2a";
    for (const r of f.rects || []) {
      ctx.strokeRect(r.minX, r.minY, r.maxX - r.minX, r.maxY - r.minY);
    }

    ctx.fillStyle = "#7aa2f7";
    for (const b of f.balls || []) {
      ctx.beginPath();
      ctx.arc(b.x, b.y, 3, 0, Math.PI * 2);
      ctx.fill();
    }

    ctx.fillStyle = "#f7768e";
    for (const b of f.nearest || []) {
      ctx.beginPath();
      ctx.arc(b.x, b.y, 5, 0, Math.PI * 2);
      ctx.fill();
    }

    hud.textContent = "balls: " + f.count + "  nodes: " + (f.rects || []).length;
  };
</script>
</body>
</html>
`
