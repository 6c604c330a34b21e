package static

// Page is split around the chart and the log panel:
// Head + form, chart, Middle, logs, Tail.
var (
	Head = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Делоне и Вороной</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				margin: 0;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 60%;
				padding: 10px;
				box-sizing: border-box;
				overflow-y: auto;
			}

			#right-container {
				width: 40%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				font-family: Consolas, monospace;
				font-size: 12px;
			}

			form {
				display: grid;
				grid-template-columns: max-content 120px;
				gap: 6px 12px;
				align-items: center;
			}

			input[type="number"],
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				border-radius: 4px;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			h1, h2, label {
				color: #d3d3d3;
			}

			.error {
				color: #ff6b6b;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Триангуляция Делоне и диаграмма Вороного</h1>
                <form id="diagram-form" method="POST">
                    <label for="width">Ширина (W):</label>
                    <input type="number" id="width" name="width" value="1000" min="10" max="5000">
                    <label for="height">Высота (H):</label>
                    <input type="number" id="height" name="height" value="1000" min="10" max="5000">
                    <label for="points">Количество точек (n):</label>
                    <input type="number" id="points" name="points" value="24" min="0" max="2000">
                    <label for="random">Случайные точки:</label>
                    <input type="checkbox" id="random" name="random" value="true" checked>
                    <label for="delaunay">Рёбра Делоне:</label>
                    <input type="checkbox" id="delaunay" name="delaunay" value="true" checked>
                    <label for="voronoi">Ячейки Вороного:</label>
                    <input type="checkbox" id="voronoi" name="voronoi" value="true" checked>
                    <span></span>
                    <input type="submit" value="Построить">
                </form>
    `

	Middle = `
            </div>
            <div id="right-container">
                <h2>Логи</h2>
                <div id="logs">`

	Tail = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('diagram-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const params = new URLSearchParams(new FormData(this)).toString();

                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => response.text())
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('Ошибка:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)
