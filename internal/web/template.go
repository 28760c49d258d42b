package web

// indexHTML is the single page the service serves. It posts the username to
// /api/analyze and renders metrics, the AI narrative, charts and the post
// table from the JSON response.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Instagram Profile Analyzer</title>
    <script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
    <style>
        :root {
            --grad: linear-gradient(45deg, #833AB4, #FD1D1D, #FCB045);
            --bg: #1a1a1a;
            --card: #2d2d2d;
            --text: #f1f1f1;
            --muted: #aaaaaa;
            --border: #444444;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            background: var(--bg);
            color: var(--text);
            margin: 0;
            padding: 20px;
            line-height: 1.6;
        }
        .container { max-width: 1000px; margin: 0 auto; }
        header { text-align: center; margin: 2rem 0; }
        h1 {
            font-size: 2.8rem;
            margin: 0;
            background: var(--grad);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
        }
        .subtitle { color: var(--muted); font-style: italic; }

        .search-row { display: flex; gap: 12px; justify-content: center; margin: 1.5rem 0; }
        input[type=text] {
            background: rgba(255,255,255,0.08);
            color: var(--text);
            border: 2px solid rgba(131,58,180,0.6);
            border-radius: 15px;
            padding: 0.7rem 1rem;
            font-size: 1rem;
            width: 320px;
        }
        button {
            background: var(--grad);
            color: white;
            border: none;
            border-radius: 25px;
            padding: 0.7rem 1.8rem;
            font-weight: bold;
            font-size: 1rem;
            cursor: pointer;
        }
        button:disabled { background: #666; cursor: not-allowed; }

        .status { text-align: center; color: var(--muted); min-height: 1.5em; }
        .error { color: #ff6b6b; }

        .metrics { display: grid; grid-template-columns: repeat(3, 1fr); gap: 16px; margin: 1.5rem 0; }
        .metric {
            background: var(--card);
            border: 1px solid var(--border);
            border-radius: 15px;
            padding: 1rem;
            text-align: center;
        }
        .metric .value { font-size: 1.8rem; font-weight: 800; }
        .metric .label { color: var(--muted); font-size: 0.9rem; }

        .panel {
            background: var(--card);
            border: 1px solid var(--border);
            border-radius: 15px;
            padding: 1.2rem;
            margin: 1rem 0;
        }
        .panel h3 { margin-top: 0; }
        details { margin: 0.6rem 0; border-left: 3px solid #833AB4; padding-left: 0.8rem; }
        details summary { cursor: pointer; font-weight: bold; }

        .charts { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; }
        .chart { background: var(--card); border-radius: 15px; padding: 6px; }
        .chart-wide { grid-column: 1 / -1; }

        table { width: 100%; border-collapse: collapse; }
        th, td { padding: 8px 10px; text-align: left; border-bottom: 1px solid var(--border); }
        th { color: var(--muted); }
        #results { display: none; }
        footer { text-align: center; color: #777; margin: 2rem 0; font-size: 0.85rem; }
    </style>
</head>
<body>
<div class="container">
    <header>
        <h1>Instagram Profile Analyzer</h1>
        <div class="subtitle">Public profile metrics and AI commentary</div>
    </header>

    <div class="search-row">
        <input type="text" id="username" placeholder="e.g. google, nasa, nike" autocomplete="off">
        <button id="analyze">Analyze Profile</button>
    </div>
    <div class="status" id="status"></div>

    <div id="results">
        <div class="panel" id="profile-header"></div>
        <div class="metrics" id="metrics"></div>

        <div class="panel">
            <h3>AI-Generated Summary</h3>
            <div id="summary"></div>
        </div>

        <div class="panel">
            <h3>Detailed Analysis</h3>
            <div id="insights"></div>
        </div>

        <div class="charts">
            <div class="chart chart-wide" id="chart-engagement"></div>
            <div class="chart" id="chart-performance"></div>
            <div class="chart" id="chart-distribution"></div>
        </div>

        <div class="panel">
            <h3>Recent Posts</h3>
            <table>
                <thead><tr><th>Date</th><th>Likes</th><th>Comments</th><th>Type</th><th>Caption Preview</th></tr></thead>
                <tbody id="posts"></tbody>
            </table>
        </div>
    </div>

    <footer>This tool analyzes public Instagram profiles only. No data is stored.</footer>
</div>

<script>
const plotTheme = {
    paper_bgcolor: 'rgba(0,0,0,0)',
    plot_bgcolor: 'rgba(0,0,0,0)',
    font: { color: '#f1f1f1' },
    height: 360
};

const insightTitles = {
    content_strategy: 'Content Strategy',
    audience_engagement: 'Audience Engagement',
    brand_analysis: 'Brand Analysis',
    growth_indicators: 'Growth Indicators',
    content_performance: 'Content Performance'
};

function esc(s) {
    const d = document.createElement('div');
    d.textContent = s == null ? '' : String(s);
    return d.innerHTML;
}

function fmt(n) { return (n || 0).toLocaleString(); }

async function analyze() {
    const btn = document.getElementById('analyze');
    const status = document.getElementById('status');
    const username = document.getElementById('username').value.trim();
    if (!username) return;

    btn.disabled = true;
    status.className = 'status';
    status.textContent = 'Scraping profile data and generating AI insights…';
    document.getElementById('results').style.display = 'none';

    try {
        const resp = await fetch('/api/analyze', {
            method: 'POST',
            headers: { 'Content-Type': 'application/json' },
            body: JSON.stringify({ username })
        });
        const data = await resp.json();
        if (!resp.ok) {
            status.className = 'status error';
            status.textContent = data.error || 'Analysis failed';
            return;
        }
        status.textContent = '';
        render(data);
    } catch (err) {
        status.className = 'status error';
        status.textContent = 'Request failed: ' + err;
    } finally {
        btn.disabled = false;
    }
}

function render(data) {
    const p = data.profile;

    let header = '<h2>@' + esc(p.username);
    if (p.full_name) header += ' &bull; ' + esc(p.full_name);
    header += '</h2>';
    if (p.biography) header += '<em>' + esc(p.biography) + '</em>';
    document.getElementById('profile-header').innerHTML = header;

    document.getElementById('metrics').innerHTML =
        '<div class="metric"><div class="value">' + fmt(p.followers) + '</div><div class="label">Followers</div></div>' +
        '<div class="metric"><div class="value">' + fmt(p.posts_count) + '</div><div class="label">Posts</div></div>' +
        '<div class="metric"><div class="value">' + fmt(p.following) + '</div><div class="label">Following</div></div>';

    document.getElementById('summary').textContent = data.analysis.summary || 'No summary available';

    let insightsHTML = '';
    for (const key of Object.keys(insightTitles)) {
        const text = data.analysis.insights[key] || 'No analysis available';
        insightsHTML += '<details><summary>' + insightTitles[key] + '</summary><p>' + esc(text) + '</p></details>';
    }
    document.getElementById('insights').innerHTML = insightsHTML;

    drawCharts(data.charts);

    let rows = '';
    for (const post of data.recent_posts || []) {
        rows += '<tr><td>' + esc((post.date || '').slice(0, 10)) + '</td>' +
            '<td>' + fmt(post.likes) + '</td>' +
            '<td>' + fmt(post.comments_count) + '</td>' +
            '<td>' + (post.is_video ? 'Video' : 'Photo') + '</td>' +
            '<td>' + esc((post.caption || 'No caption').slice(0, 100)) + '</td></tr>';
    }
    document.getElementById('posts').innerHTML = rows;

    document.getElementById('results').style.display = 'block';
}

function drawCharts(charts) {
    const eo = charts.engagement_overview;
    if (!eo.empty) {
        Plotly.newPlot('chart-engagement', [{
            type: 'bar',
            x: eo.labels,
            y: eo.values,
            marker: { color: ['#E1306C', '#833AB4', '#F77737', '#FCAF45', '#405DE6'] }
        }], Object.assign({ title: 'Profile Engagement Overview' }, plotTheme), { responsive: true });
    }

    const pp = charts.post_performance;
    if (!pp.empty) {
        Plotly.newPlot('chart-performance', [
            { type: 'scatter', x: pp.dates, y: pp.likes, name: 'Likes', line: { color: '#E1306C', width: 3 } },
            { type: 'scatter', x: pp.dates, y: pp.comments, name: 'Comments', yaxis: 'y2', line: { color: '#833AB4', width: 3 } }
        ], Object.assign({
            title: 'Post Performance Trends',
            yaxis: { title: 'Likes' },
            yaxis2: { title: 'Comments', overlaying: 'y', side: 'right' }
        }, plotTheme), { responsive: true });
    }

    const cd = charts.content_distribution;
    if (!cd.empty) {
        Plotly.newPlot('chart-distribution', [{
            type: 'pie',
            labels: cd.labels,
            values: cd.values,
            hole: 0.3,
            marker: { colors: ['#F77737', '#405DE6'] }
        }], Object.assign({ title: 'Content Type Distribution' }, plotTheme), { responsive: true });
    }
}

document.getElementById('analyze').addEventListener('click', analyze);
document.getElementById('username').addEventListener('keydown', e => {
    if (e.key === 'Enter') analyze();
});
</script>
</body>
</html>
`
